//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/Masterminds/semver/v3"
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// PackageBuilder helps create test packages with a fluent interface.
type PackageBuilder struct {
	*testkit.BaseBuilder
	name         string
	current      string
	latestStable string
	latest       string
	newVersion   string
	upgradeType  entities.UpgradeType
	upgradeTo    entities.Target
}

// NewPackageBuilder creates a new package builder with sensible defaults.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "Test.Package",
		current:     "1.0.0",
	}
}

// WithName sets the package name.
func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.name = name
	return b
}

// WithCurrent sets the current version.
func (b *PackageBuilder) WithCurrent(version string) *PackageBuilder {
	b.current = version
	return b
}

// WithLatestStable sets the latest stable version resolved from the registry.
func (b *PackageBuilder) WithLatestStable(version string) *PackageBuilder {
	b.latestStable = version
	return b
}

// WithLatest sets the latest version resolved from the registry.
func (b *PackageBuilder) WithLatest(version string) *PackageBuilder {
	b.latest = version
	return b
}

// WithNewVersion sets the version chosen for the upgrade.
func (b *PackageBuilder) WithNewVersion(version string) *PackageBuilder {
	b.newVersion = version
	return b
}

// WithUpgradeType sets the classification.
func (b *PackageBuilder) WithUpgradeType(upgradeType entities.UpgradeType) *PackageBuilder {
	b.upgradeType = upgradeType
	return b
}

// WithUpgradeTo sets the upgrade target.
func (b *PackageBuilder) WithUpgradeTo(target entities.Target) *PackageBuilder {
	b.upgradeTo = target
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *PackageBuilder) Build() interface{} {
	return b.BuildPackage()
}

// BuildPackage creates the package with a concrete return type.
func (b *PackageBuilder) BuildPackage() entities.Package {
	return entities.Package{
		Name:                b.name,
		CurrentVersion:      optionalVersion(b.current),
		LatestStableVersion: optionalVersion(b.latestStable),
		LatestVersion:       optionalVersion(b.latest),
		NewVersion:          optionalVersion(b.newVersion),
		UpgradeType:         b.upgradeType,
		UpgradeTo:           b.upgradeTo,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "Test.Package"
	b.current = "1.0.0"
	b.latestStable = ""
	b.latest = ""
	b.newVersion = ""
	b.upgradeType = entities.UpgradeNone
	b.upgradeTo = ""
	return b
}

// Clone creates a deep copy of the PackageBuilder.
func (b *PackageBuilder) Clone() testkit.Builder {
	return &PackageBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		current:      b.current,
		latestStable: b.latestStable,
		latest:       b.latest,
		newVersion:   b.newVersion,
		upgradeType:  b.upgradeType,
		upgradeTo:    b.upgradeTo,
	}
}

func optionalVersion(raw string) *semver.Version {
	if raw == "" {
		return nil
	}
	return entities.MustParseVersion(raw)
}

// Versions parses a list of version strings, keeping their order.
func Versions(raw ...string) []*semver.Version {
	versions := make([]*semver.Version, 0, len(raw))
	for _, value := range raw {
		versions = append(versions, entities.MustParseVersion(value))
	}
	return versions
}
