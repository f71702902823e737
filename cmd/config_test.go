package main

import (
	"testing"

	"myregistrar/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("INSTANCE_ID", "inst-1")
	t.Setenv("SERVICE_TYPE", "http")
	t.Setenv("HOSTNAME", "host")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("REGISTRY_URL", "http://registry:8080")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SERVER_CONTEXT_PATH", "")
	t.Setenv("MANAGEMENT_CONTEXT_PATH", "")
	t.Setenv("MANAGEMENT_PORT", "")
	t.Setenv("HEALTH_CHECK_PATH", "")
	t.Setenv("STATUS_PAGE_PATH", "")
	t.Setenv("SECURE_PORT_ENABLED", "")
	t.Setenv("TTL_MS", "")
	t.Setenv("HEARTBEAT_INTERVAL_MS", "")
}

func TestLoadConfig_InstanceIDRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INSTANCE_ID", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "INSTANCE_ID is required")
}

func TestLoadConfig_HostnameRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HOSTNAME", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "HOSTNAME is required")
}

func TestLoadConfig_ServerPortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVER_PORT is required")
}

func TestLoadConfig_PublisherRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_URL", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "one of REGISTRY_URL or REDIS_ADDR is required")
}

func TestLoadConfig_PublishersMutuallyExclusive(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "inst-1", cfg.Instance.InstanceID)
	assert.Equal(t, "http", cfg.Instance.ServiceType)
	assert.Equal(t, "host", cfg.Instance.Hostname)
	assert.False(t, cfg.Instance.SecurePortEnabled)
	assert.Equal(t, "/health", cfg.Instance.HealthCheckPath)
	assert.Equal(t, "/status", cfg.Instance.StatusPagePath)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "/", cfg.ServerContextPath)
	assert.Nil(t, cfg.ManagementContextPath)
	assert.Nil(t, cfg.ManagementPort)
	assert.Equal(t, "http://registry:8080", cfg.RegistryURL)
	assert.Equal(t, 30000, cfg.TTLMs)
	assert.Equal(t, 10000, cfg.HeartbeatIntervalMs)
}

func TestLoadConfig_ManagementOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANAGEMENT_PORT", "9000")
	t.Setenv("MANAGEMENT_CONTEXT_PATH", "/mgmt")
	t.Setenv("SERVER_CONTEXT_PATH", "/app")
	t.Setenv("SECURE_PORT_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, service.Ptr(9000), cfg.ManagementPort)
	assert.Equal(t, service.Ptr("/mgmt"), cfg.ManagementContextPath)
	assert.Equal(t, "/app", cfg.ServerContextPath)
	assert.True(t, cfg.Instance.SecurePortEnabled)
}

func TestLoadConfig_RedisPublisher(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REGISTRY_URL", "")
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.RegistryURL)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_InvalidServerPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestLoadConfig_InvalidManagementPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANAGEMENT_PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MANAGEMENT_PORT")
}
