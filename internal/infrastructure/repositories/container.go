package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/packcheck/internal/domain/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/console"
	fbaRepo "github.com/rios0rios0/packcheck/internal/infrastructure/repositories/filebasedapp"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/msbuild"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/nuget"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/settings"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/solution"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register source registry with every declaration and solution format
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register(msbuild.NewProjectSourceRepository())
		reg.Register(msbuild.NewCentralPackageSourceRepository())
		reg.Register(fbaRepo.NewFileBasedAppSourceRepository())
		reg.RegisterSolution(solution.NewSlnSolutionRepository())
		reg.RegisterSolution(solution.NewSlnxSolutionRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.RegistryFactory {
		return nuget.NewNuGetRegistryRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(settings.NewRCSettingsRepository); err != nil {
		return err
	}
	if err := container.Provide(console.NewConsoleReporter); err != nil {
		return err
	}
	return container.Provide(console.NewStdinConfirmer)
}
