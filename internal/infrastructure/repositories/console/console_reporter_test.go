//go:build unit

package console_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/packcheck/test/domain/entitybuilders"
)

func sampleReport() entities.UnitReport {
	return entities.UnitReport{
		Path: "/work/App.csproj",
		Packages: []entities.Package{
			entitybuilders.NewPackageBuilder().WithName("Serilog").WithCurrent("1.0.1").
				WithLatestStable("1.0.2").WithLatest("1.0.3-beta.1").WithUpgradeType(entities.UpgradePatch).BuildPackage(),
			entitybuilders.NewPackageBuilder().WithName("Polly").WithCurrent("7.2.4").
				WithLatestStable("8.4.1").WithUpgradeType(entities.UpgradeMajor).BuildPackage(),
		},
	}
}

func TestConsoleReporterPrintResult(t *testing.T) {
	t.Parallel()

	t.Run("should print a table with highlighted versions", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.PlainPalette)

		// when
		err := reporter.PrintResult(sampleReport(), entities.ReportOptions{Output: entities.OutputTable})

		// then
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Package Name  Current  Latest Stable", lines[0])
		assert.Equal(t, "Serilog       1.0.1    1.0.2", lines[2])
		assert.Equal(t, "Polly         7.2.4    8.4.1", lines[3])
	})

	t.Run("should add the latest column when pre-releases are shown", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.MarkupPalette)

		// when
		err := reporter.PrintResult(sampleReport(), entities.ReportOptions{Pre: true})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Latest Stable  Latest")
		assert.Contains(t, out.String(), "1.0.[green]3-beta.1[/]")
		assert.Contains(t, out.String(), "Serilog       1.0.1    1.0.[green]2[/]          1.0.[green]3-beta.1[/]")
		assert.Contains(t, out.String(), "[red]8.4.1[/]")
	})

	t.Run("should group packages by upgrade type", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.MarkupPalette)

		// when
		err := reporter.PrintResult(sampleReport(), entities.ReportOptions{Format: entities.FormatGroup})

		// then
		require.NoError(t, err)
		text := out.String()
		patch := strings.Index(text, "[green]Patch[/] Backwards compatible - bug fixes")
		major := strings.Index(text, "[red]Major[/] Possibly breaking changes - check Changelog")
		assert.GreaterOrEqual(t, patch, 0)
		assert.Greater(t, major, patch)
		assert.NotContains(t, text, "Minor")
	})

	t.Run("should encode the report as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.MarkupPalette)

		// when
		err := reporter.PrintResult(sampleReport(), entities.ReportOptions{Output: entities.OutputJSON})

		// then
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "/work/App.csproj", decoded["path"])
		packages := decoded["packages"].([]any)
		require.Len(t, packages, 2)
		assert.Equal(t, "patch", packages[0].(map[string]any)["upgradeType"])
		assert.NotContains(t, packages[1].(map[string]any), "latest")
	})

	t.Run("should encode the report as YAML", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.MarkupPalette)

		// when
		err := reporter.PrintResult(sampleReport(), entities.ReportOptions{Output: entities.OutputYAML})

		// then
		require.NoError(t, err)
		var decoded struct {
			Path     string `yaml:"path"`
			Packages []struct {
				Name        string `yaml:"name"`
				UpgradeType string `yaml:"upgradeType"`
			} `yaml:"packages"`
		}
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "/work/App.csproj", decoded.Path)
		assert.Equal(t, "Polly", decoded.Packages[1].Name)
		assert.Equal(t, "major", decoded.Packages[1].UpgradeType)
	})
}

func TestConsoleReporterUpgradeAndDocument(t *testing.T) {
	t.Parallel()

	t.Run("should print the upgraded versions", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.MarkupPalette)
		report := entities.UnitReport{Packages: []entities.Package{
			entitybuilders.NewPackageBuilder().WithName("Serilog").WithCurrent("1.0.1").WithNewVersion("1.1.0").BuildPackage(),
		}}

		// when
		reporter.PrintUpgradeResult(report)

		// then
		assert.Contains(t, out.String(), "Upgraded To")
		assert.Contains(t, out.String(), "1.[yellow]1.0[/]")
	})

	t.Run("should print a dry run document with a trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := console.NewConsoleReporterWithWriters(&out, nil, entities.PlainPalette)

		// when
		reporter.PrintDocument("/work/App.csproj", []byte("<Project />"))

		// then
		assert.Equal(t, "--- /work/App.csproj (dry run) ---\n<Project />\n", out.String())
	})

	t.Run("should return a silent tracker without a progress writer", func(t *testing.T) {
		t.Parallel()

		// given
		reporter := console.NewConsoleReporterWithWriters(&bytes.Buffer{}, nil, entities.PlainPalette)

		// when
		tracker := reporter.Progress(3)

		// then
		assert.NotPanics(t, func() {
			tracker.Increment()
			tracker.Finish()
		})
	})
}
