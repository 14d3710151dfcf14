package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/packcheck/internal/domain/commands"
	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// CheckController handles the "check" subcommand, which is also the default command.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "check",
		Aliases: []string{"c"},
		Short:   "Check for newer versions of the NuGet packages",
		Long: `Check the NuGet packages of a project, solution, central package management file
or file-based app against the registry and list the ones with a newer version.`,
	}
}

// AddFlags adds check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	cmd.Flags().Bool("pre", false, "Include pre-release versions")
	cmd.Flags().String("format", "", "Report layout: group")
	cmd.Flags().StringP("output", "o", string(entities.OutputTable), "Report encoding: table, json or yaml")
}

// Validate rejects enumerated options outside their permitted set.
func (it *CheckController) Validate(cmd *cobra.Command, _ []string) error {
	if err := validateTarget(cmd); err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if _, err := entities.ParseFormat(format); err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	_, err := entities.ParseOutput(output)
	return err
}

// Execute runs the check.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	source, err := sourceOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	rawFormat, _ := cmd.Flags().GetString("format")
	rawOutput, _ := cmd.Flags().GetString("output")
	format, err := entities.ParseFormat(rawFormat)
	if err != nil {
		return err
	}
	output, err := entities.ParseOutput(rawOutput)
	if err != nil {
		return err
	}

	opts := commands.CheckOptions{SourceOptions: source, Format: format, Output: output}
	if cmd.Flags().Changed("pre") {
		pre, _ := cmd.Flags().GetBool("pre")
		opts.Pre = &pre
	}
	return it.command.Execute(commandContext(cmd), opts)
}
