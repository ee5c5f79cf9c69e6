package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// FlagValue is a command-line flag as seen by the resolver.
type FlagValue struct {
	Value string
	// Set is true when the user passed the flag explicitly.
	Set bool
}

// ResolvedValue is a setting with its winning source.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Bool interprets the value as a boolean. Unparseable values are false.
func (r ResolvedValue) Bool() bool {
	b, err := strconv.ParseBool(r.Value)
	return err == nil && b
}

type candidate struct {
	source ConfigSource
	value  string
	set    bool
}

// resolve picks the first set candidate; later set candidates are shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// Resolve resolves key using precedence:
// (1) flag, (2) RNAPP_* env, (3) config file, (4) built-in default.
func (l *Loader) Resolve(key string, flag FlagValue) ResolvedValue {
	env := envFor(key)
	envValue, envSet := "", false
	if env != "" {
		envValue, envSet = os.LookupEnv(env)
	}

	return resolve(key,
		candidate{SourceFlag, flag.Value, flag.Set},
		candidate{SourceEnv, envValue, envSet},
		candidate{SourceConfig, l.file.GetString(key), l.file.InConfig(key)},
		candidate{SourceDefault, defaultValue(key), true},
	)
}

// ResolveAll resolves every known setting without flags, in a stable order.
func (l *Loader) ResolveAll() []ResolvedValue {
	out := make([]ResolvedValue, 0, len(settings))
	for _, s := range settings {
		out = append(out, l.Resolve(s.key, FlagValue{}))
	}
	return out
}

// defaultValue returns the built-in default of key as a string.
func defaultValue(key string) string {
	def := DefaultConfig()
	switch key {
	case KeyPackageManager:
		return def.PackageManager
	case KeySkipInstall:
		return strconv.FormatBool(def.SkipInstall)
	case KeySkipGit:
		return strconv.FormatBool(def.SkipGit)
	case KeySkipPods:
		return strconv.FormatBool(def.SkipPods)
	case KeyExcludeMatch:
		return def.ExcludeMatch
	case KeyGitCommitMessage:
		return def.GitCommitMessage
	case KeyLogTimestamps:
		return strconv.FormatBool(*def.Log.Timestamps)
	default:
		return ""
	}
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RNAPP_CONFIG env, (3) ~/.rnapp/config.yaml default
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolveConfigPathResult{}, fmt.Errorf("resolving default config path: %w", err)
	}

	envValue := os.Getenv(EnvConfig)
	r := resolve("config",
		candidate{SourceFlag, flagValue, flagValue != ""},
		candidate{SourceEnv, envValue, envValue != ""},
		candidate{SourceDefault, paths.ConfigFile, true},
	)

	return ResolveConfigPathResult{ConfigPath: r.Value, Source: r.Source, Shadowed: r.Shadowed}, nil
}

// LogResolved logs each value and what it shadowed at DEBUG level.
func LogResolved(values ...ResolvedValue) {
	for _, r := range values {
		output.Debug("resolved config",
			"key", r.Key,
			"value", r.Value,
			"source", r.Source,
		)
		for source, shadowed := range r.Shadowed {
			output.Debug("config value shadowed",
				"key", r.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
