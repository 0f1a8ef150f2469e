// Package worddiff computes word-level differences within a changed line.
package worddiff

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/lcs"
)

// Compile-time interface verification.
var (
	_ utsushi.WordComparer = (*Differ)(nil)
	_ utsushi.Tokenizer    = (*Segmenter)(nil)
)

// Segmenter splits text on Unicode (UAX #29) word boundaries. Whitespace runs
// and punctuation come out as tokens of their own, so the tokens always join
// back into the input.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Tokenize splits s into word-boundary tokens.
func (sg *Segmenter) Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	// Pre-allocate with estimated capacity (avoid reallocations)
	tokens := make([]string, 0, len(s)/3+1)
	iter := words.FromString(s)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}

// Differ tokenizes lines and aligns the tokens.
type Differ struct {
	tokenizer utsushi.Tokenizer
	aligner   utsushi.Aligner
}

// Option configures a Differ.
type Option func(*Differ)

// WithTokenizer replaces the default UAX #29 segmenter.
func WithTokenizer(t utsushi.Tokenizer) Option {
	return func(d *Differ) {
		d.tokenizer = t
	}
}

// WithAligner replaces the default LCS aligner.
func WithAligner(a utsushi.Aligner) Option {
	return func(d *Differ) {
		d.aligner = a
	}
}

// NewDiffer creates a new Differ.
func NewDiffer(opts ...Option) *Differ {
	d := &Differ{
		tokenizer: NewSegmenter(),
		aligner:   lcs.NewAligner(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CompareWords returns spans for both lines. Tokens common to both appear on
// both sides as unchanged; removed tokens only on the left and added tokens
// only on the right. Adjacent tokens of the same kind are merged into one span.
func (d *Differ) CompareWords(a, b string) (left, right []utsushi.WordSpan) {
	edits := d.aligner.Align(d.tokenizer.Tokenize(a), d.tokenizer.Tokenize(b))

	var lb, rb spanBuilder
	for _, e := range edits {
		text := strings.Join(e.Lines, "")
		switch e.Op {
		case utsushi.OpEqual:
			lb.add(text, utsushi.SpanUnchanged)
			rb.add(text, utsushi.SpanUnchanged)
		case utsushi.OpDelete:
			lb.add(text, utsushi.SpanRemoved)
		case utsushi.OpInsert:
			rb.add(text, utsushi.SpanAdded)
		}
	}
	return lb.spans, rb.spans
}

// spanBuilder merges adjacent spans of the same kind.
type spanBuilder struct {
	spans []utsushi.WordSpan
}

func (sb *spanBuilder) add(text string, kind utsushi.SpanKind) {
	if text == "" {
		return
	}
	if last := len(sb.spans) - 1; last >= 0 && sb.spans[last].Kind == kind {
		sb.spans[last].Text += text
		return
	}
	sb.spans = append(sb.spans, utsushi.WordSpan{Text: text, Kind: kind})
}
