// Package handlers contains the management http endpoints myregistrar serves
// at the paths it advertises to the registry.
package handlers

import (
	"net/http"
	"net/url"

	"myregistrar/domain"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer serves the resolved health-check and status-page endpoints.
type HTTPServer struct {
	cfg      domain.InstanceConfig
	metadata domain.ManagementMetadata
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(cfg domain.InstanceConfig, metadata domain.ManagementMetadata, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		cfg:      cfg,
		metadata: metadata,
		logger:   logger,
	}
}

// RegisterHandlers registers the management routes at the exact paths the
// resolved metadata advertises, so the published URL and the served route
// always agree.
func RegisterHandlers(e *echo.Echo, server *HTTPServer) error {
	healthURL, err := url.Parse(server.metadata.HealthCheckURL)
	if err != nil {
		return err
	}
	statusURL, err := url.Parse(server.metadata.StatusPageURL)
	if err != nil {
		return err
	}

	e.GET(healthURL.Path, server.HealthCheck)
	e.GET(statusURL.Path, server.StatusPage)
	return nil
}

// HealthCheck (GET health path) reports instance liveness.
func (h *HTTPServer) HealthCheck(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "UP"})
}

// StatusPage (GET status path) reports instance identity and the management
// metadata currently advertised.
func (h *HTTPServer) StatusPage(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toStatusResponse(h.cfg, h.metadata))
}
