// Package execx runs external commands on behalf of the release workflow.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandError reports a failed external command along with the full
// command line, so the operator can re-run it by hand.
type CommandError struct {
	Cmd     string
	Wrapped error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.Cmd, e.Wrapped)
}

func (e *CommandError) Unwrap() error {
	return e.Wrapped
}

// Runner executes external commands as blocking child processes.
type Runner interface {
	// Run executes the command, streaming its output to the runner's writers.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Ensure the interface is satisfied.
var _ Runner = (*CLIRunner)(nil)

// CLIRunner is the concrete Runner backed by os/exec.
type CLIRunner struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewCLIRunner creates a CLIRunner whose child processes write to the given streams.
func NewCLIRunner(logger *slog.Logger, stdout, stderr io.Writer) *CLIRunner {
	return &CLIRunner{logger: logger, stdout: stdout, stderr: stderr}
}

func (r *CLIRunner) Run(ctx context.Context, name string, args ...string) error {
	r.logger.Debug("running command", "cmd", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Cmd: commandLine(name, args), Wrapped: err}
	}
	return nil
}

func (r *CLIRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.logger.Debug("running command", "cmd", commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{Cmd: commandLine(name, args), Wrapped: err}
	}
	return out.String(), nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
