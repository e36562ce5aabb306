package ports

import "go.trai.ch/sectx/internal/core/domain"

// ConfigLoader defines the interface for loading configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from dir looking for a config file and returns the merged settings.
	// Defaults are returned when no file is found.
	Load(dir string) (domain.Config, error)
}
