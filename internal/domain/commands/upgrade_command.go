package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/packcheck/internal/infrastructure/repositories"
)

// Upgrade is the interface for the upgrade command.
type Upgrade interface {
	Execute(ctx context.Context, opts UpgradeOptions) error
}

// UpgradeOptions holds runtime options for the upgrade command.
type UpgradeOptions struct {
	SourceOptions
	PackageName string // upgrade only this package when set
	DryRun      bool
	Interactive bool
}

// UpgradeCommand rewrites the declarations of outdated packages to their new version.
type UpgradeCommand struct {
	sources         *infraRepos.SourceRegistry
	settings        repositories.SettingsRepository
	registryFactory repositories.RegistryFactory
	reporter        repositories.Reporter
	confirmer       repositories.Confirmer
}

// NewUpgradeCommand creates a new UpgradeCommand.
func NewUpgradeCommand(
	sources *infraRepos.SourceRegistry,
	settings repositories.SettingsRepository,
	registryFactory repositories.RegistryFactory,
	reporter repositories.Reporter,
	confirmer repositories.Confirmer,
) *UpgradeCommand {
	return &UpgradeCommand{
		sources:         sources,
		settings:        settings,
		registryFactory: registryFactory,
		reporter:        reporter,
		confirmer:       confirmer,
	}
}

// Execute upgrades every resolved declaration file.
func (it *UpgradeCommand) Execute(ctx context.Context, opts UpgradeOptions) error {
	settings, _, err := it.settings.Load(opts.WorkDir)
	if err != nil {
		return err
	}
	opts.SourceOptions = opts.SourceOptions.withSettings(settings)

	plan, err := resolveUnits(it.sources, opts.SourceOptions)
	if err != nil {
		return err
	}

	registry := it.registryFactory(opts.Source)
	upgraded := false
	err = plan.run(it.reporter, func(u unit) error {
		changed, unitErr := it.upgradeUnit(ctx, registry, u, opts)
		upgraded = upgraded || changed
		return unitErr
	})

	if upgraded && !opts.DryRun {
		it.reporter.Infof("Run dotnet restore to upgrade packages.")
	}
	return err
}

func (it *UpgradeCommand) upgradeUnit(
	ctx context.Context,
	registry repositories.RegistryRepository,
	u unit,
	opts UpgradeOptions,
) (bool, error) {
	path, err := u.source.Locate(opts.WorkDir, u.explicit)
	if err != nil {
		return false, err
	}
	it.reporter.Infof("Upgrading packages in %s", path)

	packages, err := u.source.Extract(path)
	if err != nil {
		return false, err
	}
	if len(packages) == 0 {
		it.reporter.Warnf("Could not find any packages in %s", path)
		return false, nil
	}

	packages = entities.OnlyPackage(entities.ApplyFilters(packages, opts.Filter, opts.Exclude), opts.PackageName)
	if len(packages) == 0 {
		if opts.PackageName != "" {
			it.reporter.Warnf("Package %s is not declared in %s", opts.PackageName, path)
		} else {
			it.reporter.Warnf("No packages to check. Check your 'filter' or 'exclude' in settings/config.")
		}
		return false, nil
	}

	packages = enrichPackages(ctx, registry, it.reporter, packages)
	packages, err = entities.PrepareForUpgrade(packages, opts.Target)
	if err != nil {
		return false, err
	}
	if opts.Interactive {
		if packages, err = it.confirmEach(packages); err != nil {
			return false, err
		}
	}
	if len(packages) == 0 {
		it.reporter.Successf("All packages are up to date.")
		return false, nil
	}

	content, err := u.source.Rewrite(path, packages, opts.DryRun)
	if err != nil {
		return false, err
	}
	if opts.DryRun {
		it.reporter.PrintDocument(path, content)
	}
	it.reporter.PrintUpgradeResult(entities.UnitReport{Path: path, Packages: packages})
	return true, nil
}

// confirmEach keeps the packages the user agrees to upgrade.
func (it *UpgradeCommand) confirmEach(packages []entities.Package) ([]entities.Package, error) {
	selected := make([]entities.Package, 0, len(packages))
	for _, pkg := range packages {
		question := fmt.Sprintf("Upgrade %s from %s -> %s", pkg.Name, pkg.CurrentVersion, pkg.NewVersion)
		ok, err := it.confirmer.Confirm(question)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Debugf("Skipping %s", pkg.Name)
			continue
		}
		selected = append(selected, pkg)
	}
	return selected, nil
}
