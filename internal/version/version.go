// Package version provides version information for the rnapp CLI.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// ToolInfo describes an external tool the generated project depends on.
type ToolInfo struct {
	Name string `json:"name"`

	// Version is the detected version, "v"-prefixed.
	Version string `json:"version,omitempty"`

	Path string `json:"path,omitempty"`

	// Found indicates the tool is on PATH.
	Found bool `json:"found"`

	// Compatible indicates the version meets the minimum major version.
	Compatible bool `json:"compatible"`

	Message string `json:"message,omitempty"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("rnapp:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}

// MajorAtLeast reports whether version has a MAJOR component of at least minMajor.
// A minMajor of 0 accepts any parseable version.
func MajorAtLeast(version string, minMajor int) bool {
	major, err := strconv.Atoi(strings.SplitN(strings.TrimPrefix(version, "v"), ".", 2)[0])
	if err != nil {
		return false
	}
	return major >= minMajor
}

// CompatibilityMessage explains whether version satisfies minMajor.
func CompatibilityMessage(version string, minMajor int) string {
	if MajorAtLeast(version, minMajor) {
		return "compatible"
	}
	if _, err := strconv.Atoi(strings.SplitN(strings.TrimPrefix(version, "v"), ".", 2)[0]); err != nil {
		return "incompatible - invalid version format"
	}
	return fmt.Sprintf("incompatible - MAJOR version below %d", minMajor)
}

// String returns a human-readable tool info string.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-6s not found", t.Name)
	}

	compat := "compatible"
	if !t.Compatible {
		compat = t.Message
	}
	return fmt.Sprintf("  %-6s %s (%s)  %s", t.Name, t.Version, compat, t.Path)
}
