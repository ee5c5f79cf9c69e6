// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Configuration management for rnapp.

Settings are resolved using precedence:
  flag > RNAPP_* env > config file > built-in default

The config file is ~/.rnapp/config.yaml unless --config or RNAPP_CONFIG names another.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())
	cmd.AddCommand(NewConfigShowCmd())

	return cmd
}
