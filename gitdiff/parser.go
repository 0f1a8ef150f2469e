// Package gitdiff splits unified diffs into comparable hunks using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/utsushi"
)

// Compile-time interface verification.
var _ utsushi.PatchParser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns one Hunk per text fragment, in patch
// order. Binary files and header-only changes (mode, rename) have no hunks.
func (p *Parser) Parse(r io.Reader) ([]utsushi.Hunk, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	var hunks []utsushi.Hunk
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		path := f.NewName
		if f.IsDelete || path == "" {
			path = f.OldName
		}
		for _, frag := range f.TextFragments {
			hunks = append(hunks, convertFragment(path, frag))
		}
	}
	return hunks, nil
}

// convertFragment rebuilds the old side from context and deleted lines and
// the new side from context and added lines.
func convertFragment(path string, frag *gitdiff.TextFragment) utsushi.Hunk {
	var oldText, newText strings.Builder
	for _, l := range frag.Lines {
		switch l.Op {
		case gitdiff.OpContext:
			oldText.WriteString(l.Line)
			newText.WriteString(l.Line)
		case gitdiff.OpDelete:
			oldText.WriteString(l.Line)
		case gitdiff.OpAdd:
			newText.WriteString(l.Line)
		}
	}

	return utsushi.Hunk{
		Path:     path,
		OldStart: startLine(frag.OldPosition),
		NewStart: startLine(frag.NewPosition),
		Old:      oldText.String(),
		New:      newText.String(),
	}
}

// startLine maps a fragment position to the first line of its side. go-gitdiff
// puts an empty side (new or deleted file) at position 0.
func startLine(pos int64) int {
	if pos < 1 {
		return 1
	}
	return int(pos)
}
