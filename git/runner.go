// Package git provides access to file contents stored in git via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/fwojciec/utsushi"
)

// Compile-time interface verification.
var _ utsushi.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Show returns the content of path at revision rev in the repository at
// repoPath. An empty repoPath means the current directory.
func (r *Runner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	if rev == "" || path == "" {
		return "", fmt.Errorf("git show: revision and path are required (got %q:%q)", rev, path)
	}
	if repoPath == "" {
		repoPath = "."
	}

	args := []string{"-C", repoPath, "show", rev + ":" + path}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git show failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return string(output), nil
}
