//go:build unit

package nuget_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/nuget"
)

const serviceIndexFmt = `{
	"version": "3.0.0",
	"resources": [
		{"@id": "%[1]s/v3/registration5-gz-semver2/", "@type": "RegistrationsBaseUrl/3.6.0"},
		{"@id": "%[1]s/v3-flatcontainer", "@type": "PackageBaseAddress/3.0.0"}
	]
}`

// mockFeed starts a fake NuGet v3 feed. packages maps lowercase ids to their flat container versions.
func mockFeed(t *testing.T, packages map[string][]string, indexHits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v3/index.json" {
			if indexHits != nil {
				indexHits.Add(1)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, serviceIndexFmt, "http://"+r.Host)
			return
		}

		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) == 3 && parts[0] == "v3-flatcontainer" && parts[2] == "index.json" {
			if parts[1] == "broken" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			versions, ok := packages[parts[1]]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"versions": ["%s"]}`, strings.Join(versions, `", "`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNuGetRegistryRepositoryGetVersions(t *testing.T) {
	t.Parallel()

	t.Run("should return versions in feed order using the lowercase id", func(t *testing.T) {
		t.Parallel()

		// given
		server := mockFeed(t, map[string][]string{
			"newtonsoft.json": {"12.0.3", "13.0.1-beta1", "13.0.1", "13.0.3"},
		}, nil)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		versions, err := repository.GetVersions(context.Background(), "Newtonsoft.Json")

		// then
		require.NoError(t, err)
		require.Len(t, versions, 4)
		assert.Equal(t, "12.0.3", versions[0].String())
		assert.Equal(t, "13.0.1-beta1", versions[1].String())
		assert.Equal(t, "13.0.3", versions[3].String())
	})

	t.Run("should skip entries that are not semantic versions", func(t *testing.T) {
		t.Parallel()

		// given
		server := mockFeed(t, map[string][]string{"legacy": {"1.0.0", "1.0.0.1", "2.0.0"}}, nil)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		versions, err := repository.GetVersions(context.Background(), "Legacy")

		// then
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, "2.0.0", versions[1].String())
	})

	t.Run("should return an empty list for an unknown package", func(t *testing.T) {
		t.Parallel()

		// given
		server := mockFeed(t, map[string][]string{}, nil)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		versions, err := repository.GetVersions(context.Background(), "Does.Not.Exist")

		// then
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("should return an error for a failing feed", func(t *testing.T) {
		t.Parallel()

		// given
		server := mockFeed(t, map[string][]string{}, nil)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		_, err := repository.GetVersions(context.Background(), "broken")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("should read the service index only once", func(t *testing.T) {
		t.Parallel()

		// given
		var hits atomic.Int32
		server := mockFeed(t, map[string][]string{"a": {"1.0.0"}, "b": {"2.0.0"}}, &hits)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		_, errA := repository.GetVersions(context.Background(), "a")
		_, errB := repository.GetVersions(context.Background(), "b")

		// then
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("should fail when the service index has no flat container", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"version": "3.0.0", "resources": []}`)
		}))
		t.Cleanup(server.Close)
		repository := nuget.NewNuGetRegistryRepository(server.URL + "/v3/index.json")

		// when
		_, err := repository.GetVersions(context.Background(), "a")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PackageBaseAddress/3.0.0")
	})
}
