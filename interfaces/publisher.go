package interfaces

import (
	"context"

	"myregistrar/domain"
)

// Publisher transmits instance registrations to a discovery registry.
//
//go:generate moq -stub -out mock/publisher.go -pkg mock . Publisher
type Publisher interface {
	// Register publishes the registration. Re-registering the same instance
	// refreshes its TTL.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or the registry/storage
	//    rejects the write.
	Register(ctx context.Context, reg domain.Registration) error

	// Deregister removes the instance from the registry.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the registry/storage delete fails.
	Deregister(ctx context.Context, instanceID string) error
}
