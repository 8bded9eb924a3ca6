package adapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	m "bvi.dev/pkg/bvi/internal/model"
)

// ScaffoldAdapter runs the framework's own project generator.
type ScaffoldAdapter interface {
	// Run executes command with projectName appended as last argument. The
	// process shares the terminal; only its exit code is inspected.
	Run(ctx context.Context, command string, projectName string) error
}

// LocalScaffoldAdapter runs the scaffolding command with os/exec.
type LocalScaffoldAdapter struct {
	workDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// NewLocalScaffoldAdapter constructs an adapter wired to the process terminal.
func NewLocalScaffoldAdapter() *LocalScaffoldAdapter {
	return &LocalScaffoldAdapter{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithWorkDir returns a copy of the adapter that runs commands in dir.
func (a *LocalScaffoldAdapter) WithWorkDir(dir string) *LocalScaffoldAdapter {
	clone := *a
	clone.workDir = dir

	return &clone
}

// Run splits command on whitespace and runs it without a shell, so the
// project name is passed through as a single argument.
func (a *LocalScaffoldAdapter) Run(ctx context.Context, command string, projectName string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty scaffold command", m.ErrScaffoldFailed)
	}

	args := append(fields[1:], projectName)

	// #nosec G204 - the command template comes from the installer configuration
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Dir = a.workDir
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	slog.Info("Running scaffold command", "command", fields[0], "args", args, "dir", a.workDir)

	if err := cmd.Run(); err != nil {
		slog.Error("Scaffold command failed", "command", command, "project", projectName, "error", err)
		return fmt.Errorf("%w: %s %s: %w", m.ErrScaffoldFailed, command, projectName, err)
	}

	return nil
}
