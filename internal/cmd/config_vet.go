// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/config"
	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the rnapp configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values are valid (package manager, exclusion match mode, exclusions)

The config path is resolved using precedence:
  --config flag > RNAPP_CONFIG env > ~/.rnapp/config.yaml

Examples:
  # Validate default configuration
  rnapp config vet

  # Validate custom config path
  rnapp config vet --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigVet())
		},
	}
}

func runConfigVet() error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	configPath := pathResult.ConfigPath

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'rnapp config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if _, err := config.NewLoader().LoadWithDefaults(configPath); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
