package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Dir is the working directory of the command; empty means the current one.
	Dir string
}

// Output runs the command and captures standard output.
// Standard error is discarded. There is no timeout beyond ctx.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout bytes.Buffer

	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}

	return stdout.String(), nil
}

// Describe returns `git describe --tags` for the working tree, or "" if it fails.
// Line breaks are removed and surrounding whitespace trimmed.
func Describe(ctx context.Context, runner CommandRunner) string {
	if runner == nil {
		return ""
	}

	out, err := runner.Output(ctx, "git", "describe", "--tags")
	if err != nil {
		return ""
	}

	return strings.TrimSpace(strings.ReplaceAll(out, "\n", ""))
}
