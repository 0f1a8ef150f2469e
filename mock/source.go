package mock

import (
	"context"

	"github.com/fwojciec/utsushi"
)

// Compile-time interface verification.
var (
	_ utsushi.TextSource = (*TextSource)(nil)
	_ utsushi.GitRunner  = (*GitRunner)(nil)
	_ utsushi.Clipboard  = (*Clipboard)(nil)
)

// TextSource is a mock implementation of utsushi.TextSource.
type TextSource struct {
	ReadFn func(ctx context.Context, ref string) (string, error)
}

func (m *TextSource) Read(ctx context.Context, ref string) (string, error) {
	return m.ReadFn(ctx, ref)
}

// GitRunner is a mock implementation of utsushi.GitRunner.
type GitRunner struct {
	ShowFn func(ctx context.Context, repoPath, rev, path string) (string, error)
}

func (m *GitRunner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return m.ShowFn(ctx, repoPath, rev, path)
}

// Clipboard is a mock implementation of utsushi.Clipboard.
type Clipboard struct {
	CopyFn  func(content string) error
	PasteFn func() (string, error)
}

func (m *Clipboard) Copy(content string) error {
	return m.CopyFn(content)
}

func (m *Clipboard) Paste() (string, error) {
	return m.PasteFn()
}
