package commands

import (
	"context"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/packcheck/internal/infrastructure/repositories"
)

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) error
}

// CheckOptions holds runtime options for the check command.
type CheckOptions struct {
	SourceOptions
	Pre    *bool // nil when not given on the command line
	Format entities.Format
	Output entities.Output
}

// CheckCommand reports the packages that have a newer version in the registry.
type CheckCommand struct {
	sources         *infraRepos.SourceRegistry
	settings        repositories.SettingsRepository
	registryFactory repositories.RegistryFactory
	reporter        repositories.Reporter
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	sources *infraRepos.SourceRegistry,
	settings repositories.SettingsRepository,
	registryFactory repositories.RegistryFactory,
	reporter repositories.Reporter,
) *CheckCommand {
	return &CheckCommand{
		sources:         sources,
		settings:        settings,
		registryFactory: registryFactory,
		reporter:        reporter,
	}
}

// Execute checks every resolved declaration file and prints the outdated packages.
func (it *CheckCommand) Execute(ctx context.Context, opts CheckOptions) error {
	settings, configPath, err := it.settings.Load(opts.WorkDir)
	if err != nil {
		return err
	}
	opts, err = opts.withSettings(settings, configPath)
	if err != nil {
		return err
	}

	reporter := reporterFor(it.reporter, opts.Output)
	plan, err := resolveUnits(it.sources, opts.SourceOptions)
	if err != nil {
		return err
	}

	registry := it.registryFactory(opts.Source)
	report := entities.ReportOptions{Format: opts.Format, Output: opts.Output, Pre: opts.Pre != nil && *opts.Pre}
	outdated := false
	err = plan.run(reporter, func(u unit) error {
		found, unitErr := it.checkUnit(ctx, registry, reporter, u, opts, report)
		outdated = outdated || found
		return unitErr
	})

	if outdated {
		reporter.Infof("Run packcheck upgrade to upgrade to the latest stable versions.")
		reporter.Infof("Run packcheck --help for more options.")
	}
	return err
}

func (it *CheckCommand) checkUnit(
	ctx context.Context,
	registry repositories.RegistryRepository,
	reporter repositories.Reporter,
	u unit,
	opts CheckOptions,
	report entities.ReportOptions,
) (bool, error) {
	path, err := u.source.Locate(opts.WorkDir, u.explicit)
	if err != nil {
		return false, err
	}
	reporter.Infof("Checking versions for %s", path)

	packages, err := u.source.Extract(path)
	if err != nil {
		return false, err
	}
	if len(packages) == 0 {
		reporter.Warnf("Could not find any packages in %s", path)
		return false, nil
	}

	packages = entities.ApplyFilters(packages, opts.Filter, opts.Exclude)
	if len(packages) == 0 {
		reporter.Warnf("No packages to check. Check your 'filter' or 'exclude' in settings/config.")
		return false, nil
	}

	packages = enrichPackages(ctx, registry, reporter, packages)
	packages, err = entities.CalculateUpgradeTypes(packages, opts.Target, report.Pre)
	if err != nil {
		return false, err
	}

	packages = entities.PrepareForOutput(packages)
	if len(packages) == 0 {
		reporter.Successf("All packages are up to date.")
		return false, nil
	}
	return true, reporter.PrintResult(entities.UnitReport{Path: path, Packages: packages}, report)
}

// withSettings merges the configuration file into the options; the command line wins.
func (o CheckOptions) withSettings(settings *entities.Settings, configPath string) (CheckOptions, error) {
	o.SourceOptions = o.SourceOptions.withSettings(settings)
	if o.Output == "" {
		o.Output = entities.OutputTable
	}
	if settings == nil {
		return o, nil
	}

	if o.Pre == nil {
		o.Pre = settings.Pre
	}
	if o.Format == entities.FormatPlain && settings.Format != "" {
		format, err := entities.ParseFormat(settings.Format)
		if err != nil {
			return o, &entities.InvalidConfigError{Path: configPath, Err: err}
		}
		o.Format = format
	}
	return o, nil
}
