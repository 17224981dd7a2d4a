// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShell is the interpreter that receives every command line.
const DefaultShell = "sh"

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor by running each line through `sh -c`.
type Executor struct {
	logger ports.Logger
	shell  string
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithShell replaces the interpreter. Relative names are looked up on PATH.
func WithShell(shell string) Option {
	return func(e *Executor) {
		e.shell = shell
	}
}

// WithOutput redirects the command streams, which default to the process's own.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		shell:  DefaultShell,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs line through the shell and waits for it to complete.
// When ctx carries a telemetry vertex, the command output is copied to it as well.
func (e *Executor) Execute(ctx context.Context, line string) (int, error) {
	env := os.Environ()

	shell := e.shell
	if !filepath.IsAbs(shell) {
		if lp, err := lookPath(shell, env); err == nil {
			shell = lp
		}
	}

	cmd := exec.CommandContext(ctx, shell, "-c", line) //nolint:gosec // build files are trusted input
	cmd.Env = env

	stdout, stderr := e.stdout, e.stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdout, vertex.Stdout())
		stderr = io.MultiWriter(stderr, vertex.Stderr())
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.logger.Debug("exec: " + line)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", -1)
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
