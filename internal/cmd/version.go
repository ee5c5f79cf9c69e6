// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var checkTools bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rnapp version information.

Displays:
  - rnapp version, commit, and build date
  - With --tools, the node, git and CocoaPods versions found on PATH`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.Get().String())
			if !checkTools {
				return nil
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			output.Println("")
			output.Println("Toolchain:")
			for _, tool := range version.Toolchain {
				output.Println(version.Detect(ctx, tool).String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkTools, "tools", false, "Also check node, git and pod")

	return cmd
}
