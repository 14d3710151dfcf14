package controllers

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/packcheck/internal/domain/commands"
	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

// addSourceFlags registers the flags shared by check and upgrade.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("csproj-file", "", "Path to the .csproj file to use")
	cmd.Flags().String("sln-file", "", "Path to the .sln file to use")
	cmd.Flags().String("slnx-file", "", "Path to the .slnx file to use")
	cmd.Flags().String("cpm-file", "", "Path to the Directory.Packages.props file to use")
	cmd.Flags().String("fba-file", "", "Path to the file-based app (.cs) to use")
	cmd.Flags().StringSliceP("filter", "f", nil, "Only include these packages (repeatable)")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Exclude these packages (repeatable)")
	cmd.Flags().String("target", string(entities.TargetStable), "Version to compare against: stable or latest")
	cmd.Flags().String("source", "", "NuGet v3 service index URL (default: nuget.org)")
}

func validateTarget(cmd *cobra.Command) error {
	target, _ := cmd.Flags().GetString("target")
	_, err := entities.ParseTarget(target)
	return err
}

// sourceOptionsFromFlags reads the shared flags. Values are expected to be validated already.
func sourceOptionsFromFlags(cmd *cobra.Command) (commands.SourceOptions, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return commands.SourceOptions{}, fmt.Errorf("failed to resolve the working directory: %w", err)
	}

	csProjFile, _ := cmd.Flags().GetString("csproj-file")
	slnFile, _ := cmd.Flags().GetString("sln-file")
	slnxFile, _ := cmd.Flags().GetString("slnx-file")
	cpmFile, _ := cmd.Flags().GetString("cpm-file")
	fbaFile, _ := cmd.Flags().GetString("fba-file")
	filter, _ := cmd.Flags().GetStringSlice("filter")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	source, _ := cmd.Flags().GetString("source")
	rawTarget, _ := cmd.Flags().GetString("target")

	target, err := entities.ParseTarget(rawTarget)
	if err != nil {
		return commands.SourceOptions{}, err
	}

	return commands.SourceOptions{
		WorkDir:    workDir,
		CsProjFile: csProjFile,
		SlnFile:    slnFile,
		SlnxFile:   slnxFile,
		CpmFile:    cpmFile,
		FbaFile:    fbaFile,
		Filter:     filter,
		Exclude:    exclude,
		Target:     target,
		Source:     source,
	}, nil
}

// commandContext returns the context cobra runs the command with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
