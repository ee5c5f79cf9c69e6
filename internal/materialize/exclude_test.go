package materialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusions_Substring(t *testing.T) {
	e := Exclusions{Patterns: []string{"node_modules", ".git", "android/app/build", "Pods"}}

	tests := []struct {
		path string
		want bool
	}{
		{"node_modules", true},
		{"node_modules/react/index.js", true},
		{"packages/node_modules_backup/x", true},
		{".git/HEAD", true},
		{".gitignore", true},
		{"android/app/build/outputs/app.apk", true},
		{"x/android/app/builder/y", true},
		{"ios/Pods/Manifest.lock", true},
		{"android/app/build.gradle", true},
		{"android/build.gradle", false},
		{"App.tsx", false},
		{"ios/Podfile", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Excludes(tt.path))
		})
	}
}

func TestExclusions_Segment(t *testing.T) {
	e := Exclusions{Patterns: []string{"node_modules", ".git", "build", "android/app/build"}, Mode: MatchSegment}

	tests := []struct {
		path string
		want bool
	}{
		{"node_modules", true},
		{"node_modules/react/index.js", true},
		{"packages/node_modules_backup/x", false},
		{".git/HEAD", true},
		{".gitignore", false},
		{"_gitignore", false},
		{"android/app/build/outputs/app.apk", true},
		{"ios/build/Release", true},
		{"android/app/build.gradle", false},
		{"android/build.gradle", false},
		{"x/android/app/builder/y", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Excludes(tt.path))
		})
	}
}

func TestExclusions_EmptyPatternIgnored(t *testing.T) {
	e := Exclusions{Patterns: []string{""}}
	assert.False(t, e.Excludes("App.tsx"))
}

func TestParseMatchMode(t *testing.T) {
	mode, ok := ParseMatchMode("")
	assert.True(t, ok)
	assert.Equal(t, MatchSubstring, mode)

	mode, ok = ParseMatchMode("Segment")
	assert.True(t, ok)
	assert.Equal(t, MatchSegment, mode)
	assert.Equal(t, "segment", mode.String())

	_, ok = ParseMatchMode("glob")
	assert.False(t, ok)
}
