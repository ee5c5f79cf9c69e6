// Package project holds the caller-supplied project description and the
// placeholder table derived from it.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
)

// Package managers understood by the install step.
const (
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
	PackageManagerPNPM = "pnpm"
	PackageManagerBun  = "bun"
)

// DefaultPackageManager is used when none is configured.
const DefaultPackageManager = PackageManagerNPM

// ValidPackageManagers returns all supported package managers.
func ValidPackageManagers() []string {
	return []string{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM, PackageManagerBun}
}

// Options are the raw inputs for a new project. Empty fields are derived.
type Options struct {
	// ProjectName is used verbatim for directory and file names (e.g. "CoolApp").
	ProjectName string

	// BundleIdentifier is the reverse-domain app id. Default: com.<lowercased name>.
	BundleIdentifier string

	// DisplayName is the human-readable app name. Default: ProjectName.
	DisplayName string

	// ProjectPath is where the project is created. Default: ./<ProjectName>.
	ProjectPath string

	// PackageManager runs the dependency install. Default: npm.
	PackageManager string

	SkipInstall bool
	SkipGit     bool
	SkipPods    bool
}

// Spec is the validated project description. It is not modified once built.
type Spec struct {
	ProjectName      string `json:"projectName"`
	ProjectNameLower string `json:"projectNameLower"`
	BundleIdentifier string `json:"bundleIdentifier"`
	DisplayName      string `json:"displayName"`
	ProjectPath      string `json:"projectPath"`
	PackageManager   string `json:"packageManager"`
	SkipInstall      bool   `json:"skipInstall"`
	SkipGit          bool   `json:"skipGit"`
	SkipPods         bool   `json:"skipPods"`
}

// New derives defaults from opts and validates the result.
func New(opts Options) (Spec, error) {
	spec := Spec{
		ProjectName:      strings.TrimSpace(opts.ProjectName),
		BundleIdentifier: strings.TrimSpace(opts.BundleIdentifier),
		DisplayName:      strings.TrimSpace(opts.DisplayName),
		ProjectPath:      opts.ProjectPath,
		PackageManager:   strings.ToLower(strings.TrimSpace(opts.PackageManager)),
		SkipInstall:      opts.SkipInstall,
		SkipGit:          opts.SkipGit,
		SkipPods:         opts.SkipPods,
	}

	spec.ProjectNameLower = strings.ToLower(spec.ProjectName)

	if spec.BundleIdentifier == "" {
		spec.BundleIdentifier = DeriveBundleIdentifier(spec.ProjectName)
	}
	if spec.DisplayName == "" {
		spec.DisplayName = spec.ProjectName
	}
	if spec.ProjectPath == "" {
		spec.ProjectPath = spec.ProjectName
	}
	if spec.PackageManager == "" {
		spec.PackageManager = DefaultPackageManager
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}

	abs, err := filepath.Abs(spec.ProjectPath)
	if err != nil {
		return Spec{}, fmt.Errorf("resolving project path: %w", err)
	}
	spec.ProjectPath = abs

	return spec, nil
}

// Validate checks every field of the spec.
func (s Spec) Validate() error {
	if err := ValidateProjectName(s.ProjectName); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "project-name",
			"Project names must start with a letter and contain only letters and digits (e.g. CoolApp).")
	}
	if err := ValidateBundleIdentifier(s.BundleIdentifier); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "bundle-id",
			"Use reverse-domain notation such as com.acme.coolapp.")
	}
	if err := ValidateDisplayName(s.DisplayName); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "display-name",
			`Display names must not contain quotes, apostrophes, backslashes, "<", ">" or "&".`)
	}
	if !IsValidPackageManager(s.PackageManager) {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager: %s", s.PackageManager), "", "package-manager",
			fmt.Sprintf("Valid package managers: %s", strings.Join(ValidPackageManagers(), ", ")))
	}
	return nil
}

// AndroidPackagePath returns the bundle identifier as nested path segments,
// e.g. com.acme.app -> ["com", "acme", "app"].
func (s Spec) AndroidPackagePath() []string {
	return strings.Split(s.BundleIdentifier, ".")
}

// IsValidPackageManager reports whether name is a supported package manager.
func IsValidPackageManager(name string) bool {
	for _, pm := range ValidPackageManagers() {
		if name == pm {
			return true
		}
	}
	return false
}

// DeriveBundleIdentifier derives com.<name> from a project name.
func DeriveBundleIdentifier(projectName string) string {
	return "com." + strings.ToLower(projectName)
}
