// Package metadata resolves the management URLs an instance advertises to the
// discovery registry: a health-check endpoint, a status-page endpoint and the
// effective port the management interface listens on.
package metadata

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"myregistrar/domain"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// PortUnassigned is the port value the networking stack reports for a
// randomly assigned port that has not been bound yet. It is a pre-bind
// placeholder, not a real port number; metadata referencing it must never be
// published.
const PortUnassigned = 0

// Provider resolves management metadata. Stateless; safe for concurrent use.
type Provider struct {
	logger log.Logger
}

// NewProvider creates a new Provider.
func NewProvider(logger log.Logger) *Provider {
	logger = log.WithPrefix(logger, "component", "MetadataProvider")
	return &Provider{logger: logger}
}

// Get resolves the management metadata for the instance. managementContextPath
// and managementPort are optional; nil means not configured.
// Returns:
// 1) (metadata, nil) on success;
// 2) (nil, nil) when a random port is still unbound and nothing should be
//    published yet — callers retry once the real port is known;
// 3) (nil, bad_configuration) when the inputs cannot form a valid URL.
func (p *Provider) Get(cfg domain.InstanceConfig, serverPort int, serverContextPath string, managementContextPath *string, managementPort *int) (*domain.ManagementMetadata, error) {
	if isRandom(managementPort) {
		return nil, nil
	}
	if managementPort == nil && serverPort == PortUnassigned {
		return nil, nil
	}

	healthCheckURL, err := p.buildURL(cfg.Hostname, serverPort, serverContextPath, managementContextPath, managementPort, cfg.HealthCheckPath, false)
	if err != nil {
		return nil, err
	}
	statusPageURL, err := p.buildURL(cfg.Hostname, serverPort, serverContextPath, managementContextPath, managementPort, cfg.StatusPagePath, false)
	if err != nil {
		return nil, err
	}

	metadata := &domain.ManagementMetadata{
		HealthCheckURL: healthCheckURL,
		StatusPageURL:  statusPageURL,
		ManagementPort: service.ValueOr(managementPort, serverPort),
	}
	if cfg.SecurePortEnabled {
		secureHealthCheckURL, err := p.buildURL(cfg.Hostname, serverPort, serverContextPath, managementContextPath, managementPort, cfg.HealthCheckPath, true)
		if err != nil {
			return nil, err
		}
		metadata.SecureHealthCheckURL = secureHealthCheckURL
	}

	return metadata, nil
}

func isRandom(port *int) bool {
	return port != nil && *port == PortUnassigned
}

func (p *Provider) buildURL(hostname string, serverPort int, serverContextPath string, managementContextPath *string, managementPort *int, subPath string, secure bool) (string, error) {
	contextPath := refineManagementContextPath(serverContextPath, managementContextPath, managementPort)
	port := service.ValueOr(managementPort, serverPort)
	scheme := "http"
	if secure {
		scheme = "https"
	}

	u, err := constructValidURL(scheme, hostname, port, contextPath, subPath)
	if err != nil {
		return "", err
	}
	level.Debug(p.logger).Log("msg", "constructed management url", "url", u)
	return u, nil
}

// refineManagementContextPath decides which context path the management
// endpoints live under. The management context path is relative to the server
// context path when no dedicated management port is set; with its own port it
// stands alone.
func refineManagementContextPath(serverContextPath string, managementContextPath *string, managementPort *int) string {
	if managementContextPath != nil && managementPort == nil {
		return serverContextPath + *managementContextPath
	}
	if managementContextPath != nil {
		return *managementContextPath
	}
	if managementPort != nil {
		return "/"
	}
	return serverContextPath
}

// constructValidURL builds an absolute URL from its parts. The context path is
// normalized to exactly one leading and one trailing slash, then subPath is
// resolved against it with standard relative-URL semantics.
func constructValidURL(scheme, hostname string, port int, contextPath, subPath string) (string, error) {
	if !strings.HasSuffix(contextPath, "/") {
		contextPath = contextPath + "/"
	}
	refinedContextPath := "/" + strings.TrimLeft(contextPath, "/")

	base, err := url.Parse(scheme + "://" + hostname + ":" + strconv.Itoa(port) + refinedContextPath)
	if err != nil {
		return "", service.NewBadConfigurationError(errorMessage(scheme, hostname, port, contextPath, subPath), err)
	}
	ref, err := url.Parse(refineSubPath(subPath, contextPath))
	if err != nil {
		return "", service.NewBadConfigurationError(errorMessage(scheme, hostname, port, contextPath, subPath), err)
	}

	return base.ResolveReference(ref).String(), nil
}

// refineSubPath strips the context path prefix from subPath so resolving it
// against the base cannot double the context segment, then strips leading
// slashes so the reference stays relative. Only an exact prefix match of a
// non-root context path is stripped.
func refineSubPath(subPath, contextPath string) string {
	if contextPath != "/" && strings.HasPrefix(subPath, contextPath) {
		subPath = strings.TrimPrefix(subPath, contextPath)
	}
	return strings.TrimLeft(subPath, "/")
}

func errorMessage(scheme, hostname string, port int, contextPath, subPath string) string {
	return fmt.Sprintf("failed to construct url for scheme: %s, hostname: %s, port: %d, contextPath: %s, subPath: %s", scheme, hostname, port, contextPath, subPath)
}
