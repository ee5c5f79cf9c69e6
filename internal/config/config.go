// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Setting keys, as they appear in the config file.
const (
	KeyPackageManager   = "packageManager"
	KeySkipInstall      = "skipInstall"
	KeySkipGit          = "skipGit"
	KeySkipPods         = "skipPods"
	KeyExcludeMatch     = "excludeMatch"
	KeyGitCommitMessage = "gitCommitMessage"
	KeyLogTimestamps    = "log.timestamps"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the rnapp CLI configuration, loaded from ~/.rnapp/config.yaml.
type Config struct {
	// PackageManager installs dependencies after generation.
	// Env: RNAPP_PACKAGE_MANAGER, Default: npm
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty" json:"packageManager,omitempty"`

	// SkipInstall disables the dependency install.
	// Env: RNAPP_SKIP_INSTALL
	SkipInstall bool `mapstructure:"skipInstall" yaml:"skipInstall" json:"skipInstall"`

	// SkipGit disables the initial commit.
	// Env: RNAPP_SKIP_GIT
	SkipGit bool `mapstructure:"skipGit" yaml:"skipGit" json:"skipGit"`

	// SkipPods disables pod install on macOS.
	// Env: RNAPP_SKIP_PODS
	SkipPods bool `mapstructure:"skipPods" yaml:"skipPods" json:"skipPods"`

	// ExcludeMatch overrides the template's exclusion match mode ("substring" or "segment").
	// Env: RNAPP_EXCLUDE_MATCH
	ExcludeMatch string `mapstructure:"excludeMatch" yaml:"excludeMatch,omitempty" json:"excludeMatch,omitempty"`

	// Exclude adds copy exclusion patterns to the template's own.
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty" json:"exclude,omitempty"`

	// GitCommitMessage is the message of the initial commit.
	// Env: RNAPP_GIT_COMMIT_MESSAGE
	GitCommitMessage string `mapstructure:"gitCommitMessage" yaml:"gitCommitMessage,omitempty" json:"gitCommitMessage,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rnapp config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		PackageManager:   "npm",
		GitCommitMessage: "Initial commit from @giltripper/create-rn-app",
		Log:              LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.PackageManager == "" {
		out.PackageManager = def.PackageManager
	}
	if out.GitCommitMessage == "" {
		out.GitCommitMessage = def.GitCommitMessage
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}

const fileHeader = `# rnapp configuration.
# Values here are overridden by RNAPP_* environment variables and by flags.
`

// Render returns c as a commented config file.
func (c *Config) Render() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(fileHeader), data...), nil
}
