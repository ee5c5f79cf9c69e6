package config

import (
	"fmt"
	"strings"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// Validate checks a loaded configuration. path is reported as the error location.
func Validate(cfg *Config, path string) error {
	if cfg.PackageManager != "" && !project.IsValidPackageManager(cfg.PackageManager) {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager %q", cfg.PackageManager),
			path, KeyPackageManager,
			fmt.Sprintf("Valid package managers: %s", strings.Join(project.ValidPackageManagers(), ", ")))
	}

	switch cfg.ExcludeMatch {
	case "", "substring", "segment":
	default:
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown exclusion match mode %q", cfg.ExcludeMatch),
			path, KeyExcludeMatch, `Use "substring" or "segment".`)
	}

	for i, p := range cfg.Exclude {
		if strings.TrimSpace(p) == "" {
			return oerrors.NewValidationError(
				fmt.Sprintf("exclude[%d] is empty", i), path, "exclude", "")
		}
	}
	return nil
}
