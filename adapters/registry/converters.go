package registry

import (
	"encoding/json"
	"time"

	"myregistrar/domain"
)

// registerRequest is the JSON body of POST /v1/register.
type registerRequest struct {
	InstanceId  string             `json:"instance_id"`
	ServiceType string             `json:"service_type"`
	Hostname    string             `json:"hostname"`
	Port        int                `json:"port"`
	Timestamp   time.Time          `json:"timestamp"`
	TtlMs       int                `json:"ttl_ms"`
	Metadata    managementMetadata `json:"metadata"`
}

// managementMetadata is the management block of the register request.
type managementMetadata struct {
	HealthCheckUrl       string `json:"health_check_url"`
	SecureHealthCheckUrl string `json:"secure_health_check_url,omitempty"`
	StatusPageUrl        string `json:"status_page_url"`
	ManagementPort       int    `json:"management_port"`
}

// marshalRegisterRequest converts a domain registration to the wire request.
func marshalRegisterRequest(reg domain.Registration) ([]byte, error) {
	return json.Marshal(registerRequest{
		InstanceId:  reg.InstanceID,
		ServiceType: reg.ServiceType,
		Hostname:    reg.Hostname,
		Port:        reg.Port,
		Timestamp:   reg.Timestamp,
		TtlMs:       reg.TTLMs,
		Metadata: managementMetadata{
			HealthCheckUrl:       reg.Metadata.HealthCheckURL,
			SecureHealthCheckUrl: reg.Metadata.SecureHealthCheckURL,
			StatusPageUrl:        reg.Metadata.StatusPageURL,
			ManagementPort:       reg.Metadata.ManagementPort,
		},
	})
}
