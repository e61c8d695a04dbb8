package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result is the outcome of a finished subprocess.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes a binary with an argv list. Implementations must not go
// through a shell. A process that starts and exits non-zero is reported through
// Result.ExitCode with a nil error; the error is reserved for failures to run
// at all (binary missing, context cancelled before start, ...).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Env, when non-nil, replaces the child's environment.
	Env []string
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Env != nil {
		cmd.Env = r.Env
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
