package controllers

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/packcheck/internal/domain/commands"
	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// UpgradeController handles the "upgrade" subcommand.
type UpgradeController struct {
	command commands.Upgrade
}

// NewUpgradeController creates a new UpgradeController.
func NewUpgradeController(command commands.Upgrade) *UpgradeController {
	return &UpgradeController{command: command}
}

// GetBind returns the Cobra command metadata for the upgrade controller.
func (it *UpgradeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "upgrade [package_name]",
		Aliases: []string{"u"},
		Short:   "Upgrade the NuGet packages to their newer versions",
		Long: `Rewrite the versions of the outdated NuGet packages in place.
Only the version values change; the rest of the file is kept as is.
Give a package name to upgrade that package only.`,
	}
}

// AddFlags adds upgrade-specific flags to the given Cobra command.
func (it *UpgradeController) AddFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Show the changes without writing them")
	cmd.Flags().BoolP("interactive", "i", false, "Confirm every package before upgrading it")
}

// Validate rejects extra arguments and enumerated options outside their permitted set.
func (it *UpgradeController) Validate(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("upgrade accepts at most one package name")
	}
	return validateTarget(cmd)
}

// Execute runs the upgrade.
func (it *UpgradeController) Execute(cmd *cobra.Command, args []string) error {
	source, err := sourceOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	interactive, _ := cmd.Flags().GetBool("interactive")
	opts := commands.UpgradeOptions{SourceOptions: source, DryRun: dryRun, Interactive: interactive}
	if len(args) > 0 {
		opts.PackageName = args[0]
	}
	return it.command.Execute(commandContext(cmd), opts)
}
