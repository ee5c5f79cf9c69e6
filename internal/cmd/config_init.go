// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/config"
	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the rnapp configuration.

Writes ~/.rnapp/config.yaml (or the path given by --config / RNAPP_CONFIG)
with every setting at its built-in default:
  - Package manager used for the dependency install
  - Whether install, CocoaPods and git run after generation
  - How template exclusions are matched
  - The initial commit message

Examples:
  # Initialize configuration
  rnapp config init

  # Overwrite existing configuration
  rnapp config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigInit(force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	configPath := pathResult.ConfigPath

	if _, err := os.Stat(configPath); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultConfig().Render()
	if err != nil {
		return fmt.Errorf("rendering default configuration: %w", err)
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(configPath))
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+configPath)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + configPath))
	output.Println("Validate with: rnapp config vet")

	return nil
}
