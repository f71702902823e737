// Package myredis contains the publisher that writes registrations straight
// into the registry's Redis store, for deployments colocated with it.
package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"myregistrar/domain"
	"myregistrar/service"

	"github.com/go-redis/redis/v8"
)

// storedInstance is the JSON document written under the registry key scheme.
type storedInstance struct {
	InstanceID           string    `json:"instance_id"`
	ServiceType          string    `json:"service_type"`
	Hostname             string    `json:"hostname"`
	Port                 int       `json:"port"`
	Timestamp            time.Time `json:"timestamp"`
	TTLMs                int       `json:"ttl_ms"`
	HealthCheckURL       string    `json:"health_check_url"`
	SecureHealthCheckURL string    `json:"secure_health_check_url,omitempty"`
	StatusPageURL        string    `json:"status_page_url"`
	ManagementPort       int       `json:"management_port"`
}

type redisPublisher struct {
	client redis.UniversalClient
	prefix string
}

// NewPublisher creates a publisher that registers instances by writing them to
// Redis with the registration TTL. The key scheme is prefix:instance_id, the
// same one the registry reads.
func NewPublisher(client redis.UniversalClient, prefix string) *redisPublisher {
	return &redisPublisher{
		client: client,
		prefix: prefix,
	}
}

// Register writes the registration under prefix:instance_id with its TTL.
func (r *redisPublisher) Register(ctx context.Context, reg domain.Registration) error {
	bytes, err := json.Marshal(toStoredInstance(reg))
	if err != nil {
		return service.NewInternalServerError("Redis marshal registration error", fmt.Errorf("can't marshal registration for instance '%s', err: %w", reg.InstanceID, err))
	}

	err = r.client.Set(ctx, r.generateKey(reg.InstanceID), bytes, time.Duration(reg.TTLMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write registration to redis (key='%s'), err: %w", reg.InstanceID, err))
	}

	return nil
}

// Deregister deletes the registration for the given instance from Redis.
func (r *redisPublisher) Deregister(ctx context.Context, instanceID string) error {
	err := r.client.Del(ctx, r.generateKey(instanceID)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete registration from redis (key='%s'), err: %w", instanceID, err))
	}
	return nil
}

func toStoredInstance(reg domain.Registration) storedInstance {
	return storedInstance{
		InstanceID:           reg.InstanceID,
		ServiceType:          reg.ServiceType,
		Hostname:             reg.Hostname,
		Port:                 reg.Port,
		Timestamp:            reg.Timestamp,
		TTLMs:                reg.TTLMs,
		HealthCheckURL:       reg.Metadata.HealthCheckURL,
		SecureHealthCheckURL: reg.Metadata.SecureHealthCheckURL,
		StatusPageURL:        reg.Metadata.StatusPageURL,
		ManagementPort:       reg.Metadata.ManagementPort,
	}
}

func (r *redisPublisher) generateKey(key string) string {
	return r.prefix + ":" + key
}
