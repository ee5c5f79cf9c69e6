package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GilTRipper/create-react-native-app/internal/config"
)

var rnappEnv = []string{
	config.EnvConfig,
	"RNAPP_PACKAGE_MANAGER",
	"RNAPP_SKIP_INSTALL",
	"RNAPP_SKIP_GIT",
	"RNAPP_SKIP_PODS",
	"RNAPP_EXCLUDE_MATCH",
	"RNAPP_GIT_COMMIT_MESSAGE",
	"RNAPP_LOG_TIMESTAMPS",
}

// isolateConfig points HOME at a temp dir, clears RNAPP_* variables and
// resets the command globals. It returns the temp home.
func isolateConfig(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, name := range rnappEnv {
		if old, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, old) })
			os.Unsetenv(name)
		}
	}

	configFlag, loader, rnappConf = "", nil, nil
	t.Cleanup(func() { configFlag, loader, rnappConf = "", nil, nil })

	return home
}

// configPathIn returns the default config file below home.
func configPathIn(home string) string {
	return filepath.Join(home, ".rnapp", "config.yaml")
}
