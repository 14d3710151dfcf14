package entities

import "github.com/Masterminds/semver/v3"

// UpgradeType is the semantic distance between a current and a target version.
type UpgradeType int

const (
	UpgradeNone UpgradeType = iota
	UpgradePatch
	UpgradeMinor
	UpgradeMajor
)

func (t UpgradeType) String() string {
	switch t {
	case UpgradePatch:
		return "patch"
	case UpgradeMinor:
		return "minor"
	case UpgradeMajor:
		return "major"
	default:
		return "none"
	}
}

// ClassifyUpgrade compares major, then minor, then patch. Pre-release labels are
// ignored: a change that only touches the label is UpgradeNone.
func ClassifyUpgrade(current, target *semver.Version) UpgradeType {
	if current == nil || target == nil {
		return UpgradeNone
	}

	switch {
	case current.Major() != target.Major():
		return UpgradeMajor
	case current.Minor() != target.Minor():
		return UpgradeMinor
	case current.Patch() != target.Patch():
		return UpgradePatch
	default:
		return UpgradeNone
	}
}
