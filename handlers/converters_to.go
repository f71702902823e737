package handlers

import (
	"myregistrar/domain"
)

// HealthResponse is the health-check endpoint body.
type HealthResponse struct {
	Status string `json:"status"`
}

// StatusResponse is the status-page endpoint body.
type StatusResponse struct {
	InstanceId           string `json:"instance_id"`
	ServiceType          string `json:"service_type"`
	Status               string `json:"status"`
	HealthCheckUrl       string `json:"health_check_url"`
	SecureHealthCheckUrl string `json:"secure_health_check_url,omitempty"`
	StatusPageUrl        string `json:"status_page_url"`
	ManagementPort       int    `json:"management_port"`
}

// toStatusResponse converts instance config and metadata to the API response.
func toStatusResponse(cfg domain.InstanceConfig, metadata domain.ManagementMetadata) StatusResponse {
	return StatusResponse{
		InstanceId:           cfg.InstanceID,
		ServiceType:          cfg.ServiceType,
		Status:               "UP",
		HealthCheckUrl:       metadata.HealthCheckURL,
		SecureHealthCheckUrl: metadata.SecureHealthCheckURL,
		StatusPageUrl:        metadata.StatusPageURL,
		ManagementPort:       metadata.ManagementPort,
	}
}
