// Package utsushi provides domain types for comparing text blocks line by line
// and word by word.
package utsushi

import (
	"context"
	"fmt"
)

// LineKind classifies a line in a side-by-side comparison.
type LineKind int

// Line kinds.
const (
	LineUnchanged LineKind = iota
	LineAdded
	LineRemoved
	LineChanged
	LineEmpty // Placeholder keeping both sides the same length
)

var lineKindNames = [...]string{
	LineUnchanged: "unchanged",
	LineAdded:     "added",
	LineRemoved:   "removed",
	LineChanged:   "changed",
	LineEmpty:     "empty",
}

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	if k < 0 || int(k) >= len(lineKindNames) {
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
	return lineKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k LineKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(lineKindNames) {
		return nil, fmt.Errorf("invalid line kind %d", int(k))
	}
	return []byte(lineKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LineKind) UnmarshalText(text []byte) error {
	for i, name := range lineKindNames {
		if name == string(text) {
			*k = LineKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown line kind %q", text)
}

// SpanKind classifies a word-level span within a changed line.
type SpanKind int

// Span kinds.
const (
	SpanUnchanged SpanKind = iota
	SpanAdded
	SpanRemoved
)

var spanKindNames = [...]string{
	SpanUnchanged: "unchanged",
	SpanAdded:     "added",
	SpanRemoved:   "removed",
}

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k SpanKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(spanKindNames) {
		return nil, fmt.Errorf("invalid span kind %d", int(k))
	}
	return []byte(spanKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SpanKind) UnmarshalText(text []byte) error {
	for i, name := range spanKindNames {
		if name == string(text) {
			*k = SpanKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown span kind %q", text)
}

// WordSpan is a run of text within a changed line.
type WordSpan struct {
	Text string   `json:"text"`
	Kind SpanKind `json:"kind"`
}

// LineRecord is one row on one side of a comparison.
type LineRecord struct {
	LineNumber int        `json:"line_number,omitempty"` // 1-based; 0 only for LineEmpty
	Content    string     `json:"content"`
	Kind       LineKind   `json:"kind"`
	Spans      []WordSpan `json:"spans,omitempty"` // Only set for LineChanged
}

// Stats counts rows of a DiffResult by kind. A changed pair counts once.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Total returns the sum of all counters, which equals the row count of the
// result the stats belong to.
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Changed + s.Unchanged
}

// DiffResult is a position-synchronized comparison of two texts.
// Left and Right always have the same length.
type DiffResult struct {
	Left  []LineRecord `json:"left"`
	Right []LineRecord `json:"right"`
	Stats Stats        `json:"stats"`
}

// Offset returns a copy of d with left line numbers moved by left and right
// line numbers moved by right. Empty records keep no line number.
func (d DiffResult) Offset(left, right int) DiffResult {
	return DiffResult{
		Left:  offsetRecords(d.Left, left),
		Right: offsetRecords(d.Right, right),
		Stats: d.Stats,
	}
}

func offsetRecords(records []LineRecord, n int) []LineRecord {
	out := make([]LineRecord, len(records))
	for i, r := range records {
		if r.Kind != LineEmpty {
			r.LineNumber += n
		}
		out[i] = r
	}
	return out
}

// LabeledDiff pairs a comparison against a base text with the label of the
// compared text ("B", "C", ...).
type LabeledDiff struct {
	Label string     `json:"label"`
	Diff  DiffResult `json:"diff"`
}

// PairDiff is the comparison of two texts identified by their position in the
// list of compared texts.
type PairDiff struct {
	Left  int        `json:"left"`
	Right int        `json:"right"`
	Diff  DiffResult `json:"diff"`
}

// Op is the kind of an edit operation.
type Op int

// Edit operations.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// String returns the name of the operation.
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Edit is a run of items sharing the same operation. Aligners emit edits with
// non-empty Lines and never place two edits with the same Op next to each other.
type Edit struct {
	Op    Op
	Lines []string
}

// ChangeType is a coarse classification of how two lines relate.
type ChangeType int

// Change types.
const (
	ChangeIdentical ChangeType = iota
	ChangeModified
	ChangeDifferent
)

// String returns the lowercase name of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeIdentical:
		return "identical"
	case ChangeModified:
		return "modified"
	case ChangeDifferent:
		return "different"
	default:
		return fmt.Sprintf("ChangeType(%d)", int(c))
	}
}

// Aligner computes an edit script between two sequences.
type Aligner interface {
	// Align returns edits whose Equal and Delete items reconstruct a and whose
	// Equal and Insert items reconstruct b. Within a gap, deletes precede inserts.
	Align(a, b []string) []Edit
}

// SimilarityScorer scores how alike two strings are.
type SimilarityScorer interface {
	// Similarity returns a score in [0, 1]; identical strings score 1.
	Similarity(s1, s2 string) float64
}

// WordComparer computes word-level differences between two lines.
type WordComparer interface {
	// CompareWords returns spans for both lines. Removed spans only appear on
	// the left, added spans only on the right.
	CompareWords(a, b string) (left, right []WordSpan)
}

// Tokenizer splits a string into tokens whose concatenation is the input.
type Tokenizer interface {
	Tokenize(s string) []string
}

// TextSource resolves a reference (path, revision, ...) to text.
type TextSource interface {
	Read(ctx context.Context, ref string) (string, error)
}

// GitRunner provides access to file contents stored in git.
type GitRunner interface {
	// Show returns the content of path at revision rev in the repository at repoPath.
	Show(ctx context.Context, repoPath, rev, path string) (string, error)
}

// Clipboard provides copy and paste functionality.
type Clipboard interface {
	Copy(content string) error
	Paste() (string, error)
}
