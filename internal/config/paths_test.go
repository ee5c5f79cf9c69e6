package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "absolute path",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "path with tilde",
			input:    "~/.rnapp/config.yaml",
			expected: filepath.Join(homeDir, ".rnapp", "config.yaml"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
		{
			name:     "tilde in middle (not expanded)",
			input:    "/path/~/file",
			expected: "/path/~/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".rnapp"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".rnapp", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/custom/rnapp.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/rnapp.yaml", path)
}
