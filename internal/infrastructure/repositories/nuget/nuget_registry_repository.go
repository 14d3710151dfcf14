package nuget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

const (
	// DefaultServiceIndexURL is the v3 service index of nuget.org.
	DefaultServiceIndexURL = "https://api.nuget.org/v3/index.json"

	requestTimeout         = 30 * time.Second
	userAgent              = "packcheck"
	packageBaseAddressType = "PackageBaseAddress/3.0.0"
)

// serviceIndex is the subset of the v3 service index needed to find the flat container.
type serviceIndex struct {
	Resources []struct {
		ID   string `json:"@id"`
		Type string `json:"@type"`
	} `json:"resources"`
}

// versionIndex is the response of the flat container for one package id.
type versionIndex struct {
	Versions []string `json:"versions"`
}

// NuGetRegistryRepository implements repositories.RegistryRepository against a NuGet v3 feed.
type NuGetRegistryRepository struct {
	serviceIndexURL string
	client          *http.Client

	once        sync.Once
	baseAddress string
	resolveErr  error
}

// NewNuGetRegistryRepository creates a client for the given service index. An empty URL selects nuget.org.
func NewNuGetRegistryRepository(serviceIndexURL string) repositories.RegistryRepository {
	return NewNuGetRegistryRepositoryWithClient(serviceIndexURL, &http.Client{Timeout: requestTimeout})
}

func NewNuGetRegistryRepositoryWithClient(serviceIndexURL string, client *http.Client) *NuGetRegistryRepository {
	if strings.TrimSpace(serviceIndexURL) == "" {
		serviceIndexURL = DefaultServiceIndexURL
	}
	return &NuGetRegistryRepository{serviceIndexURL: serviceIndexURL, client: client}
}

// GetVersions lists every published version of the package in the order the feed returns them.
// Entries that do not parse as semantic versions are skipped.
func (it *NuGetRegistryRepository) GetVersions(ctx context.Context, name string) ([]*semver.Version, error) {
	baseAddress, err := it.resolveBaseAddress(ctx)
	if err != nil {
		return nil, err
	}

	url := baseAddress + strings.ToLower(name) + "/index.json"
	var index versionIndex
	found, err := it.getJSON(ctx, url, &index)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch versions of %s: %w", name, err)
	}
	if !found {
		logger.Debugf("Package %s not found in %s", name, it.serviceIndexURL)
		return []*semver.Version{}, nil
	}

	versions := make([]*semver.Version, 0, len(index.Versions))
	for _, raw := range index.Versions {
		version, parseErr := semver.NewVersion(raw)
		if parseErr != nil {
			logger.Debugf("Skipping version %q of %s: %v", raw, name, parseErr)
			continue
		}
		versions = append(versions, version)
	}
	return versions, nil
}

func (it *NuGetRegistryRepository) resolveBaseAddress(ctx context.Context) (string, error) {
	it.once.Do(func() {
		var index serviceIndex
		found, err := it.getJSON(ctx, it.serviceIndexURL, &index)
		if err != nil {
			it.resolveErr = fmt.Errorf("failed to read service index %s: %w", it.serviceIndexURL, err)
			return
		}
		if !found {
			it.resolveErr = fmt.Errorf("service index %s not found", it.serviceIndexURL)
			return
		}

		for _, resource := range index.Resources {
			if resource.Type == packageBaseAddressType {
				it.baseAddress = strings.TrimSuffix(resource.ID, "/") + "/"
				logger.Debugf("Using package base address %s", it.baseAddress)
				return
			}
		}
		it.resolveErr = errors.New("service index does not advertise a " + packageBaseAddressType + " resource")
	})
	return it.baseAddress, it.resolveErr
}

// getJSON decodes the body of a GET request into target. It reports false for a 404.
func (it *NuGetRegistryRepository) getJSON(ctx context.Context, url string, target any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := it.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(target); decodeErr != nil {
		return false, fmt.Errorf("failed to parse response: %w", decodeErr)
	}
	return true, nil
}
