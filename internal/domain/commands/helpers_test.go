//go:build unit

package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	infraRepos "github.com/rios0rios0/packcheck/internal/infrastructure/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/filebasedapp"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/msbuild"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/solution"
)

const projectContent = `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Serilog" Version="2.10.0" />
    <PackageReference Include="Polly" Version="8.4.1" />
    <PackageReference Include="xunit" Version="2.4.1" />
  </ItemGroup>
</Project>
`

func newSourceRegistry() *infraRepos.SourceRegistry {
	reg := infraRepos.NewSourceRegistry()
	reg.Register(msbuild.NewProjectSourceRepository())
	reg.Register(msbuild.NewCentralPackageSourceRepository())
	reg.Register(filebasedapp.NewFileBasedAppSourceRepository())
	reg.RegisterSolution(solution.NewSlnSolutionRepository())
	reg.RegisterSolution(solution.NewSlnxSolutionRepository())
	return reg
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func registryVersions() map[string][]string {
	return map[string][]string{
		"Serilog": {"2.10.0", "3.0.0-beta.1", "3.1.1", "4.0.0-dev.1"},
		"Polly":   {"8.4.0", "8.4.1"},
		"xunit":   {"2.4.1", "2.4.2", "2.5.0-pre.2"},
	}
}
