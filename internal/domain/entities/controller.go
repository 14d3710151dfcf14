package entities

import "github.com/spf13/cobra"

// ControllerBind describes how a controller is exposed as a cobra command.
type ControllerBind struct {
	Use     string
	Short   string
	Long    string
	Aliases []string
}

// Controller is a CLI entry point.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Validate(cmd *cobra.Command, args []string) error
	Execute(cmd *cobra.Command, args []string) error
}
