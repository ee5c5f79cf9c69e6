package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for rnapp configuration.
const envPrefix = "RNAPP"

// settings maps every resolvable key to its environment variable.
var settings = []struct {
	key string
	env string
}{
	{KeyPackageManager, "RNAPP_PACKAGE_MANAGER"},
	{KeySkipInstall, "RNAPP_SKIP_INSTALL"},
	{KeySkipGit, "RNAPP_SKIP_GIT"},
	{KeySkipPods, "RNAPP_SKIP_PODS"},
	{KeyExcludeMatch, "RNAPP_EXCLUDE_MATCH"},
	{KeyGitCommitMessage, "RNAPP_GIT_COMMIT_MESSAGE"},
	{KeyLogTimestamps, "RNAPP_LOG_TIMESTAMPS"},
}

// envFor returns the environment variable bound to key.
func envFor(key string) string {
	for _, s := range settings {
		if s.key == key {
			return s.env
		}
	}
	return ""
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper

	// file holds only what the config file sets, for source attribution.
	file *viper.Viper

	// path is the config file that was read, empty before Load.
	path string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, s := range settings {
		_ = v.BindEnv(s.key, s.env)
	}

	return &Loader{v: v, file: viper.New()}
}

// Path returns the config file path used by the last Load.
func (l *Loader) Path() string {
	return l.path
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
// A missing config file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expandedPath

	for _, v := range []*viper.Viper{l.v, l.file} {
		v.SetConfigFile(expandedPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration, applies defaults and validates the result.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	if err := Validate(cfg, l.path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
