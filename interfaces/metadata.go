package interfaces

import "myregistrar/domain"

// MetadataProvider resolves the management metadata an instance advertises.
// managementContextPath and managementPort are optional; nil means not
// configured.
//
//go:generate moq -stub -out mock/metadata.go -pkg mock . MetadataProvider
type MetadataProvider interface {
	// Get resolves the management metadata.
	// Returns:
	// 1) (metadata, nil) on success;
	// 2) (nil, nil) when a random port is still unbound and nothing should be
	//    published yet;
	// 3) (nil, bad_configuration) when the inputs cannot form a valid URL.
	Get(cfg domain.InstanceConfig, serverPort int, serverContextPath string, managementContextPath *string, managementPort *int) (*domain.ManagementMetadata, error)
}
