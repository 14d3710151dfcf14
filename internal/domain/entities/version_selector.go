package entities

import "github.com/Masterminds/semver/v3"

// LatestStable returns the last version without a pre-release label.
//
// The registry lists versions in ascending order and that order is trusted as is:
// the result is the last stable entry of the list, which is not re-sorted. It returns
// nil when the list holds pre-releases only or is empty.
func LatestStable(versions []*semver.Version) *semver.Version {
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i] != nil && !IsPrerelease(versions[i]) {
			return versions[i]
		}
	}
	return nil
}

// Latest returns the last version of the ascending list, pre-release or not.
// Callers must not pass an empty list.
func Latest(versions []*semver.Version) *semver.Version {
	if len(versions) == 0 {
		panic("entities.Latest: empty version list")
	}
	return versions[len(versions)-1]
}
