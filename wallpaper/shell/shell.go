package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command. Implementations must not use a shell
// to interpret args.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Exec runs commands with os/exec.
type Exec struct{}

// ExitError carries the standard error text of a command that exited non-zero.
type ExitError struct {
	Name   string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return e.Stderr
}

func (e *ExitError) Unwrap() error { return e.Err }

// Run starts name with args and waits for it. A non-zero exit is reported as an
// *ExitError holding the captured standard error. A missing binary wraps exec.ErrNotFound.
func (Exec) Run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: name, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return fmt.Errorf("%s: %w", name, err)
}
