package entities

import "github.com/Masterminds/semver/v3"

// Package is a dependency declared in a source file along with what the registry knows about it.
type Package struct {
	Name                string
	CurrentVersion      *semver.Version
	LatestStableVersion *semver.Version
	LatestVersion       *semver.Version
	NewVersion          *semver.Version
	UpgradeType         UpgradeType
	UpgradeTo           Target
}

func NewPackage(name string, current *semver.Version) Package {
	return Package{Name: name, CurrentVersion: current}
}

// Resolved reports whether the registry returned at least one version for the package.
func (p Package) Resolved() bool {
	return p.LatestStableVersion != nil || p.LatestVersion != nil
}
