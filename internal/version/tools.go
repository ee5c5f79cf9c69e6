package version

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// versionRegex matches version strings like "v20.11.1" or "1.15.2".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// MinNodeMajor is the oldest Node.js major version generated projects support.
const MinNodeMajor = 20

// Tool names a command and how to ask it for its version.
type Tool struct {
	Name     string
	Args     []string
	MinMajor int
}

// Toolchain lists the tools a generated React Native project relies on.
var Toolchain = []Tool{
	{Name: "node", Args: []string{"--version"}, MinMajor: MinNodeMajor},
	{Name: "git", Args: []string{"--version"}},
	{Name: "pod", Args: []string{"--version"}},
}

// Detect finds tool on PATH and checks its version.
func Detect(ctx context.Context, tool Tool) ToolInfo {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return ToolInfo{
			Name:    tool.Name,
			Message: tool.Name + " not found in PATH",
		}
	}

	cmd := exec.CommandContext(ctx, path, tool.Args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return ToolInfo{
			Name:    tool.Name,
			Path:    path,
			Found:   true,
			Message: "failed to get version: " + err.Error(),
		}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return ToolInfo{Name: tool.Name, Path: path, Found: true, Message: err.Error()}
	}

	return ToolInfo{
		Name:       tool.Name,
		Version:    v,
		Path:       path,
		Found:      true,
		Compatible: MajorAtLeast(v, tool.MinMajor),
		Message:    CompatibilityMessage(v, tool.MinMajor),
	}
}

// extractVersion finds the first version number in output, "v"-prefixed.
func extractVersion(output string) (string, error) {
	// git prints "git version 2.43.0", node "v20.11.1", pod "1.15.2"
	match := versionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}
	return match, nil
}

// versionParseError indicates failure to parse version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + strings.TrimSpace(e.output)
}
