// Package registry contains the HTTP client publishing registrations to the
// discovery registry API.
package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"myregistrar/domain"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type httpPublisher struct {
	baseURL string
	client  *http.Client
	logger  log.Logger
}

// NewPublisher creates a publisher that talks to the discovery registry over
// HTTP: POST baseURL/v1/register and POST baseURL/v1/unregister/{instance_id}.
// baseURL has no trailing slash (e.g. http://registry:8080).
func NewPublisher(baseURL string, client *http.Client, logger log.Logger) (*httpPublisher, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("registry baseURL is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	logger = log.WithPrefix(logger, "component", "RegistryPublisher")
	return &httpPublisher{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}, nil
}

// Register performs POST baseURL/v1/register with the registration JSON.
func (p *httpPublisher) Register(ctx context.Context, reg domain.Registration) error {
	body, err := marshalRegisterRequest(reg)
	if err != nil {
		return service.NewInternalServerError("Registry marshal registration error", fmt.Errorf("can't marshal registration for instance '%s', err: %w", reg.InstanceID, err))
	}

	reqURL := p.baseURL + "/v1/register"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return service.NewInternalServerError("Registry request error", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return service.NewInternalServerError("Registry register error", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return service.NewInternalServerError("Registry register error", fmt.Errorf("registry returned %d", resp.StatusCode))
	}

	level.Debug(p.logger).Log("msg", "registration published", "instance_id", reg.InstanceID)
	return nil
}

// Deregister performs POST baseURL/v1/unregister/{instance_id} so the registry
// removes the instance. The instance id is substituted via url.PathEscape.
func (p *httpPublisher) Deregister(ctx context.Context, instanceID string) error {
	reqURL := p.baseURL + "/v1/unregister/" + url.PathEscape(instanceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return service.NewInternalServerError("Registry request error", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return service.NewInternalServerError("Registry unregister error", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return service.NewInternalServerError("Registry unregister error", fmt.Errorf("registry unregister returned %d", resp.StatusCode))
	}

	return nil
}
