// Package source resolves command-line text references to their content.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fwojciec/utsushi"
)

// Reference prefixes.
const (
	Stdin           = "-"
	GitPrefix       = "git:"
	ClipboardPrefix = "clipboard:"
)

// ErrEmptyClipboard is returned when a clipboard reference finds nothing to read.
var ErrEmptyClipboard = errors.New("clipboard is empty")

// Compile-time interface verification.
var _ utsushi.TextSource = (*Resolver)(nil)

// Resolver reads text from files, stdin, git revisions or the clipboard:
//
//	path/to/file       file content
//	-                  standard input (read once, shared by every "-")
//	git:<rev>:<path>   content of path at rev in RepoPath
//	clipboard:         current clipboard content
type Resolver struct {
	Stdin     io.Reader
	Git       utsushi.GitRunner
	Clipboard utsushi.Clipboard
	RepoPath  string

	stdinOnce sync.Once
	stdin     string
	stdinErr  error
}

// Read returns the text referenced by ref.
func (r *Resolver) Read(ctx context.Context, ref string) (string, error) {
	switch {
	case ref == Stdin:
		return r.readStdin()
	case strings.HasPrefix(ref, GitPrefix):
		return r.readGit(ctx, strings.TrimPrefix(ref, GitPrefix))
	case ref == ClipboardPrefix:
		return r.readClipboard()
	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func (r *Resolver) readStdin() (string, error) {
	r.stdinOnce.Do(func() {
		if r.Stdin == nil {
			r.stdinErr = errors.New("stdin is not available")
			return
		}
		data, err := io.ReadAll(r.Stdin)
		r.stdin, r.stdinErr = string(data), err
	})
	return r.stdin, r.stdinErr
}

func (r *Resolver) readGit(ctx context.Context, revPath string) (string, error) {
	rev, path, ok := strings.Cut(revPath, ":")
	if !ok || rev == "" || path == "" {
		return "", fmt.Errorf("invalid git reference %q: want git:<rev>:<path>", GitPrefix+revPath)
	}
	if r.Git == nil {
		return "", errors.New("git is not available")
	}
	return r.Git.Show(ctx, r.RepoPath, rev, path)
}

func (r *Resolver) readClipboard() (string, error) {
	if r.Clipboard == nil {
		return "", errors.New("clipboard is not available")
	}
	text, err := r.Clipboard.Paste()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		return "", ErrEmptyClipboard
	}
	return text, nil
}
