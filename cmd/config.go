package main

import (
	"fmt"
	"os"
	"strconv"

	"myregistrar/adapters/myredis"
	"myregistrar/domain"
	"myregistrar/service"
)

const (
	defaultServerContextPath   = "/"
	defaultHealthCheckPath     = "/health"
	defaultStatusPagePath      = "/status"
	defaultTTLMs               = 30000
	defaultHeartbeatIntervalMs = 10000
)

type MyRegistrarConfig struct {
	Instance              domain.InstanceConfig
	ServerPort            int
	ServerContextPath     string
	ManagementContextPath *string
	ManagementPort        *int
	RegistryURL           string
	Redis                 myredis.RedisConfig
	TTLMs                 int
	HeartbeatIntervalMs   int
}

// LoadConfig loads configuration from environment variables.
// INSTANCE_ID, SERVICE_TYPE, HOSTNAME and SERVER_PORT are required, plus
// exactly one of REGISTRY_URL or REDIS_ADDR. MANAGEMENT_PORT and
// MANAGEMENT_CONTEXT_PATH are optional; unset means no management override.
func LoadConfig() (*MyRegistrarConfig, error) {
	instanceID := os.Getenv("INSTANCE_ID")
	if instanceID == "" {
		return nil, fmt.Errorf("INSTANCE_ID is required")
	}

	serviceType := os.Getenv("SERVICE_TYPE")
	if serviceType == "" {
		return nil, fmt.Errorf("SERVICE_TYPE is required")
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		return nil, fmt.Errorf("HOSTNAME is required")
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	registryURL := os.Getenv("REGISTRY_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	if registryURL == "" && redisAddr == "" {
		return nil, fmt.Errorf("one of REGISTRY_URL or REDIS_ADDR is required")
	}
	if registryURL != "" && redisAddr != "" {
		return nil, fmt.Errorf("REGISTRY_URL and REDIS_ADDR are mutually exclusive")
	}

	securePortEnabled := false
	if s := os.Getenv("SECURE_PORT_ENABLED"); s != "" {
		securePortEnabled, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SECURE_PORT_ENABLED: %w", err)
		}
	}

	var managementPort *int
	if s := os.Getenv("MANAGEMENT_PORT"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid MANAGEMENT_PORT: %w", err)
		}
		managementPort = service.Ptr(p)
	}

	var managementContextPath *string
	if s := os.Getenv("MANAGEMENT_CONTEXT_PATH"); s != "" {
		managementContextPath = service.Ptr(s)
	}

	ttlMs := defaultTTLMs
	if s := os.Getenv("TTL_MS"); s != "" {
		ttlMs, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid TTL_MS: %w", err)
		}
	}

	heartbeatIntervalMs := defaultHeartbeatIntervalMs
	if s := os.Getenv("HEARTBEAT_INTERVAL_MS"); s != "" {
		heartbeatIntervalMs, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid HEARTBEAT_INTERVAL_MS: %w", err)
		}
	}

	return &MyRegistrarConfig{
		Instance: domain.InstanceConfig{
			InstanceID:        instanceID,
			ServiceType:       serviceType,
			Hostname:          hostname,
			SecurePortEnabled: securePortEnabled,
			HealthCheckPath:   getenvDefault("HEALTH_CHECK_PATH", defaultHealthCheckPath),
			StatusPagePath:    getenvDefault("STATUS_PAGE_PATH", defaultStatusPagePath),
		},
		ServerPort:            serverPort,
		ServerContextPath:     getenvDefault("SERVER_CONTEXT_PATH", defaultServerContextPath),
		ManagementContextPath: managementContextPath,
		ManagementPort:        managementPort,
		RegistryURL:           registryURL,
		Redis: myredis.RedisConfig{
			Addr: redisAddr,
		},
		TTLMs:               ttlMs,
		HeartbeatIntervalMs: heartbeatIntervalMs,
	}, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
