//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with canned versions.
// It is safe for concurrent use.
type StubRegistryRepository struct {
	// --- GetVersions ---
	Versions map[string][]string // package name -> versions in registry order
	Errors   map[string]error
	Delay    time.Duration // holds every lookup open for this long

	mu sync.Mutex
	// spy: names that were requested
	RequestedNames []string
	// spy: highest number of lookups running at the same time
	PeakInFlight int
	inFlight     int
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) GetVersions(_ context.Context, name string) ([]*semver.Version, error) {
	s.mu.Lock()
	s.RequestedNames = append(s.RequestedNames, name)
	s.inFlight++
	s.PeakInFlight = max(s.PeakInFlight, s.inFlight)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	if err := s.Errors[name]; err != nil {
		return nil, err
	}
	versions := make([]*semver.Version, 0, len(s.Versions[name]))
	for _, raw := range s.Versions[name] {
		versions = append(versions, entities.MustParseVersion(raw))
	}
	return versions, nil
}

// Factory returns a repositories.RegistryFactory that always hands out this stub and
// records the requested sources.
func (s *StubRegistryRepository) Factory(sources *[]string) repositories.RegistryFactory {
	return func(source string) repositories.RegistryRepository {
		if sources != nil {
			*sources = append(*sources, source)
		}
		return s
	}
}
