// Package cmdutil provides shared command utilities for rnapp subcommands.
// It centralizes flag group management and outcome printing.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// ProjectFlags holds the flags describing the project to create.
type ProjectFlags struct {
	BundleID       string
	DisplayName    string
	Dir            string
	PackageManager string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.BundleID, "bundle-id", "b", "",
		"Bundle identifier (default: com.<projectname>)")
	cmd.Flags().StringVar(&f.DisplayName, "display-name", "",
		"Human-readable app name without quotes, apostrophes, \\, <, > or & (default: the project name)")
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Directory to create the project in (default: ./<ProjectName>)")
	cmd.Flags().StringVarP(&f.PackageManager, "package-manager", "p", project.DefaultPackageManager,
		fmt.Sprintf("Package manager: %s (env: RNAPP_PACKAGE_MANAGER)", strings.Join(project.ValidPackageManagers(), ", ")))
}

// PostStepFlags holds the flags that turn off the steps run after generation.
type PostStepFlags struct {
	SkipInstall bool
	SkipGit     bool
	SkipPods    bool
}

// AddTo registers the post-step flags on the given cobra command.
func (f *PostStepFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Skip dependency installation (env: RNAPP_SKIP_INSTALL)")
	cmd.Flags().BoolVar(&f.SkipGit, "skip-git", false,
		"Skip git initialization (env: RNAPP_SKIP_GIT)")
	cmd.Flags().BoolVar(&f.SkipPods, "skip-pods", false,
		"Skip CocoaPods installation on macOS (env: RNAPP_SKIP_PODS)")
}

// ExclusionFlags holds the flags adjusting what the copy leaves out.
type ExclusionFlags struct {
	Match string
	Paths []string
}

// AddTo registers the exclusion flags on the given cobra command.
func (f *ExclusionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Match, "exclude-match", "",
		"Exclusion matching: substring or segment (default: the template's choice)")
	cmd.Flags().StringSliceVar(&f.Paths, "exclude", nil,
		"Additional paths to leave out of the copy (can be repeated)")
}

// OutputFlags holds the output format flag.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse validates the format. Unlike output.ParseOutputFormat it rejects
// unknown values instead of falling back to text.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	switch strings.ToLower(f.Format) {
	case "", "text", "json", "yaml", "yml":
		return output.ParseOutputFormat(f.Format), nil
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown output format: %s", f.Format), "", "output",
		fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")))
}
