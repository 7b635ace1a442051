// Package tools launches external recovery programs such as photorec and
// testdisk. Their output is streamed to the user and never parsed; only the
// exit status is interpreted.
package tools

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/arthur-debert/frece/pkg/types"
)

// Tool names an external program and its arguments.
type Tool struct {
	Name string
	Args []string
}

// Runner executes known tools with the user's terminal attached.
type Runner struct {
	known  []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStreams replaces the standard streams handed to the tool.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a runner restricted to the given tool names. An empty
// list allows any program on PATH.
func NewRunner(known []string, opts ...Option) *Runner {
	r := &Runner{
		known:  append([]string(nil), known...),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Known returns the configured tool names.
func (r *Runner) Known() []string {
	return append([]string(nil), r.known...)
}

func (r *Runner) isKnown(name string) bool {
	if len(r.known) == 0 {
		return true
	}
	for _, k := range r.known {
		if k == name {
			return true
		}
	}
	return false
}

// Run executes tool in workDir (the current directory when empty) and waits
// for it to exit. A non-zero exit status returns both the run record and a
// TOOL_FAILED error.
func (r *Runner) Run(ctx context.Context, tool Tool, workDir string) (*types.ToolRun, error) {
	logger := logging.GetLogger("tools")

	if !r.isKnown(tool.Name) {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown tool %q", tool.Name).
			WithDetail("known", r.known)
	}

	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrToolNotFound, "%s is not installed or not on PATH", tool.Name).
			WithDetail("tool", tool.Name)
	}

	if workDir != "" {
		info, err := os.Stat(workDir)
		if err != nil || !info.IsDir() {
			return nil, errors.Newf(errors.ErrDirectoryNotFound, "directory not found: %s", workDir).
				WithDetail("path", workDir)
		}
	}

	run := &types.ToolRun{
		Name: tool.Name,
		Path: path,
		Args: tool.Args,
		Dir:  workDir,
	}

	cmd := exec.CommandContext(ctx, path, tool.Args...)
	cmd.Dir = workDir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	logger.Info().
		Str("tool", tool.Name).
		Str("path", path).
		Strs("args", tool.Args).
		Str("dir", workDir).
		Msg("Launching external tool")

	start := time.Now()
	err = cmd.Run()
	run.Duration = time.Since(start)

	if err == nil {
		logger.Info().Str("tool", tool.Name).Dur("duration", run.Duration).Msg("Tool finished")
		return run, nil
	}

	if ctx.Err() != nil {
		run.ExitCode = -1
		return run, errors.Wrapf(ctx.Err(), errors.ErrCancelled, "%s was interrupted", tool.Name)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		run.ExitCode = exitErr.ExitCode()
		logger.Warn().Str("tool", tool.Name).Int("exit_code", run.ExitCode).Msg("Tool failed")
		return run, errors.Newf(errors.ErrToolFailed, "%s exited with status %d", tool.Name, run.ExitCode).
			WithDetail("tool", tool.Name).
			WithDetail("exit_code", run.ExitCode)
	}

	run.ExitCode = -1
	return run, errors.Wrapf(err, errors.ErrToolFailed, "failed to run %s", tool.Name).
		WithDetail("tool", tool.Name)
}
