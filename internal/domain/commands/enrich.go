package commands

import (
	"context"
	"slices"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// registryConcurrency bounds the registry lookups in flight.
const registryConcurrency = 4

// enrichPackages resolves the latest stable and latest versions of every package.
// A failed or empty lookup leaves that package unresolved.
func enrichPackages(
	ctx context.Context,
	registry repositories.RegistryRepository,
	reporter repositories.Reporter,
	packages []entities.Package,
) []entities.Package {
	result := slices.Clone(packages)
	progress := reporter.Progress(len(result))
	defer progress.Finish()

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(registryConcurrency)
	for i := range result {
		i := i
		group.Go(func() error {
			defer func() {
				mu.Lock()
				progress.Increment()
				mu.Unlock()
			}()

			versions, err := registry.GetVersions(ctx, result[i].Name)
			if err != nil {
				logger.Warnf("Failed to fetch versions of %s: %v", result[i].Name, err)
				return nil
			}
			if len(versions) == 0 {
				logger.Debugf("No versions found for %s", result[i].Name)
				return nil
			}

			result[i].LatestStableVersion = entities.LatestStable(versions)
			result[i].LatestVersion = entities.Latest(versions)
			return nil
		})
	}
	_ = group.Wait() // lookups never fail the group

	return result
}
