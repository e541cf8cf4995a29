package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"vectap/internal/domain"
)

// ExecRunner invokes external commands as short-lived child processes and
// captures their output. Every invocation is awaited to completion; nothing
// is left running in the background.
type ExecRunner struct {
	logger domain.Logger
}

// New creates a runner that logs each invocation through logger.
func New(logger domain.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes name with args and resolves with a CommandResult. It never
// returns an error: a process that failed to launch (binary missing,
// permission denied) is reported as ExitCode 1 with the launch error message
// in Stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) domain.CommandResult {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// Launch failure: the process never produced output of its own.
			res.ExitCode = 1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}

	r.logger.Info("command finished", "cmd", name, "exit", res.ExitCode)
	return res
}
