package domain

import "time"

// InstanceConfig describes the instance myregistrar registers on behalf of.
// Read-only input: loaded once from the environment and never mutated.
type InstanceConfig struct {
	InstanceID        string // unique instance identifier
	ServiceType       string
	Hostname          string // hostname advertised in management URLs
	SecurePortEnabled bool   // instance also serves TLS on the same port
	HealthCheckPath   string // health-check path template, may be empty
	StatusPagePath    string // status-page path template, may be empty
}

// ManagementMetadata holds the management URLs and the effective management
// port an instance advertises to the registry. Built fresh per resolution and
// never mutated after the resolver returns it.
type ManagementMetadata struct {
	HealthCheckURL       string
	SecureHealthCheckURL string // set only when SecurePortEnabled
	StatusPageURL        string
	ManagementPort       int // managementPort override, else the server port
}

// Registration is the document published to the discovery registry.
// Fields match the registry API: instance_id, service_type, hostname, port,
// timestamp, ttl_ms plus the management metadata block.
type Registration struct {
	InstanceID  string
	ServiceType string
	Hostname    string
	Port        int       // primary service port consumers connect to
	Timestamp   time.Time // timestamp of this registration
	TTLMs       int       // TTL in milliseconds; re-registering refreshes it
	Metadata    ManagementMetadata
}
