// Package poststep runs the optional steps that follow materialization:
// dependency install, CocoaPods install and the initial git commit.
// Failures never invalidate the generated project; each one is reported
// together with the commands that finish the step by hand.
package poststep

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external tools.
type Runner interface {
	// Run executes name with args in dir and streams its output.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Output executes name with args in dir and returns its standard output.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// LookPath resolves name to an executable without running it.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner streams command output to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	path, err := r.LookPath(name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", CommandLine(name, args...), err)
	}
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	path, err := r.LookPath(name)
	if err != nil {
		return nil, err
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("running %s: %w: %s", CommandLine(name, args...), err, msg)
		}
		return nil, fmt.Errorf("running %s: %w", CommandLine(name, args...), err)
	}
	return out.Bytes(), nil
}

// CommandLine renders a command for display.
func CommandLine(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
