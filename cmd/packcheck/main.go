package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/packcheck/internal"
	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

const exitFailure = -1

func buildRootCommand(defaultController entities.Controller) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "packcheck",
		Short: "Check and upgrade the NuGet packages of a .NET project",
		Long: `Inspect the NuGet packages declared by a .NET project, solution,
central package management file or file-based app and compare them with the
versions published on the registry.

Usage modes:
  packcheck                  Check the project in the current directory
  packcheck upgrade          Upgrade every outdated package
  packcheck upgrade Serilog  Upgrade a single package`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		PreRunE: defaultController.Validate,
		RunE:    defaultController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// The root command behaves like "check"
	defaultController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     bind.Use,
			Short:   bind.Short,
			Long:    bind.Long,
			Aliases: bind.Aliases,
			PreRunE: controller.Validate,
			RunE:    controller.Execute,
		}

		// Add controller-specific flags
		controller.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetDefaultController())

	// Add all subcommands
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		os.Exit(exitFailure)
	}
}
