package ports

import "go.trai.ch/rmake/internal/core/domain"

// BuildFileLoader defines the interface for loading build descriptions.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type BuildFileLoader interface {
	// Discover returns the path of the build file in dir.
	Discover(dir string) (string, error)
	// Load parses the build file at path. Variable assignments are applied to env
	// as they are read.
	Load(path string, env *domain.Environment) (*domain.BuildFile, error)
}
