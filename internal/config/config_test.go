package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.False(t, cfg.SkipInstall)
	assert.False(t, cfg.SkipGit)
	assert.False(t, cfg.SkipPods)
	assert.Empty(t, cfg.ExcludeMatch, "the template decides unless overridden")
	assert.Equal(t, "Initial commit from @giltripper/create-rn-app", cfg.GitCommitMessage)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestConfig_WithDefaults(t *testing.T) {
	off := false
	cfg := &Config{PackageManager: "yarn", Log: LogConfig{Timestamps: &off}}

	got := cfg.WithDefaults()
	assert.Equal(t, "yarn", got.PackageManager)
	assert.Equal(t, DefaultConfig().GitCommitMessage, got.GitCommitMessage)
	assert.False(t, *got.Log.Timestamps)
	assert.Empty(t, cfg.GitCommitMessage, "the receiver is not modified")
}

func TestConfig_Render(t *testing.T) {
	data, err := DefaultConfig().Render()
	require.NoError(t, err)

	assert.Contains(t, string(data), "# rnapp configuration.")
	assert.Contains(t, string(data), "packageManager: npm")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, "npm", back.PackageManager)
	require.NotNil(t, back.Log.Timestamps)
	assert.True(t, *back.Log.Timestamps)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: *DefaultConfig()},
		{name: "segment", cfg: Config{ExcludeMatch: "segment"}},
		{name: "bad package manager", cfg: Config{PackageManager: "pip"}, wantErr: `unknown package manager "pip"`},
		{name: "bad match mode", cfg: Config{ExcludeMatch: "glob"}, wantErr: `unknown exclusion match mode "glob"`},
		{name: "empty exclude", cfg: Config{Exclude: []string{"coverage", " "}}, wantErr: "exclude[1] is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg, "/home/u/.rnapp/config.yaml")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "/home/u/.rnapp/config.yaml")
		})
	}
}
