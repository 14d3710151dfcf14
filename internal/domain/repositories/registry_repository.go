package repositories

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// RegistryRepository abstracts a package registry such as nuget.org.
type RegistryRepository interface {
	// GetVersions returns every published version of the package in the registry's own
	// ascending order. An unknown package yields an empty list and no error.
	GetVersions(ctx context.Context, name string) ([]*semver.Version, error)
}

// RegistryFactory builds a registry client for a service index URL. An empty URL selects
// the default public registry.
type RegistryFactory func(source string) RegistryRepository
