// Package runner executes driver commands and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrUnavailable means the command could not be invoked at all (missing
// shell, unstartable process). It is distinct from the command running and
// exiting non-zero, which is a normal Invocation.
var ErrUnavailable = errors.New("command unavailable")

// Invocation is one completed external command.
type Invocation struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner abstracts shell command execution so the engine can be tested with
// scripted outputs.
type Runner interface {
	Run(ctx context.Context, command string) (*Invocation, error)
}

// ShellRunner executes commands via the system shell.
type ShellRunner struct {
	// Dir is the working directory for commands (empty = current dir).
	Dir string
}

func NewShellRunner(dir string) *ShellRunner {
	return &ShellRunner{Dir: dir}
}

// Run executes command via sh -c, capturing stdout and stderr separately.
// A non-zero exit is not an error; as long as the process actually ran, the
// caller gets the Invocation.
func (r *ShellRunner) Run(ctx context.Context, command string) (*Invocation, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	inv := &Invocation{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			inv.ExitCode = exitErr.ExitCode()
			return inv, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, command, err)
	}
	return inv, nil
}
