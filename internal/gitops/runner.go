package gitops

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution so tests can script the git
// collaborator without a repository.
type Runner interface {
	// Run executes name with args and returns trimmed combined output.
	// A non-zero exit is always surfaced as a non-nil error; callers never
	// infer failure from output text.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// Run executes the command and wraps any failure with its trimmed output.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	trimmed := strings.TrimSpace(string(out))
	if err != nil {
		return trimmed, fmt.Errorf("%s %s failed: %w: %s", name, strings.Join(args, " "), err, trimmed)
	}
	return trimmed, nil
}

// Compile-time interface conformance check.
var _ Runner = ExecRunner{}
