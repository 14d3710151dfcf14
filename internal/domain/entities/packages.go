package entities

import "slices"

// ApplyFilters keeps the packages named in filter (when it is not empty) and then
// removes the ones named in exclude.
func ApplyFilters(packages []Package, filter, exclude []string) []Package {
	result := make([]Package, 0, len(packages))
	for _, pkg := range packages {
		if len(filter) > 0 && !slices.Contains(filter, pkg.Name) {
			continue
		}
		if slices.Contains(exclude, pkg.Name) {
			continue
		}
		result = append(result, pkg)
	}
	return result
}

// OnlyPackage narrows the list to the package with the given name. An empty name keeps everything.
func OnlyPackage(packages []Package, name string) []Package {
	if name == "" {
		return slices.Clone(packages)
	}

	result := make([]Package, 0, 1)
	for _, pkg := range packages {
		if pkg.Name == name {
			result = append(result, pkg)
		}
	}
	return result
}

// CalculateUpgradeTypes classifies every package against the version the target points to.
// With the stable target and pre enabled the latest version is used instead.
func CalculateUpgradeTypes(packages []Package, target Target, pre bool) ([]Package, error) {
	result := make([]Package, len(packages))
	for i, pkg := range packages {
		var compareTo = pkg.LatestStableVersion
		switch target {
		case TargetStable:
			if pre {
				compareTo = pkg.LatestVersion
			}
		case TargetLatest:
			if pkg.LatestVersion != nil {
				compareTo = pkg.LatestVersion
			}
		default:
			return nil, unsupportedTarget(target)
		}

		pkg.UpgradeType = ClassifyUpgrade(pkg.CurrentVersion, compareTo)
		result[i] = pkg
	}
	return result, nil
}

// PrepareForOutput drops the packages that have nothing to report.
func PrepareForOutput(packages []Package) []Package {
	result := make([]Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.UpgradeType != UpgradeNone {
			result = append(result, pkg)
		}
	}
	return result
}

// PrepareForUpgrade picks the new version of every package and drops the ones that are
// already there or have nothing to move to.
func PrepareForUpgrade(packages []Package, target Target) ([]Package, error) {
	result := make([]Package, 0, len(packages))
	for _, pkg := range packages {
		switch target {
		case TargetStable:
			pkg.NewVersion = pkg.LatestStableVersion
		case TargetLatest:
			pkg.NewVersion = pkg.LatestVersion
			if pkg.NewVersion == nil {
				pkg.NewVersion = pkg.LatestStableVersion
			}
		default:
			return nil, unsupportedTarget(target)
		}

		if pkg.NewVersion == nil || SameVersion(pkg.CurrentVersion, pkg.NewVersion) {
			continue
		}
		pkg.UpgradeTo = target
		result = append(result, pkg)
	}
	return result, nil
}

func unsupportedTarget(target Target) error {
	return &InvalidOptionValueError{
		Option:  "--target",
		Value:   string(target),
		Allowed: []string{string(TargetStable), string(TargetLatest)},
	}
}
