package utsushi

import (
	"fmt"
	"io"
)

// ComparisonCase is one unit of batch input. When Base is non-blank each text
// is compared against it; otherwise every pair of texts is compared.
type ComparisonCase struct {
	ID    string   `json:"id"`
	Base  string   `json:"base,omitempty"`
	Texts []string `json:"texts"`
}

// ComparisonReport is the outcome of one ComparisonCase. Exactly one of
// Labeled, Pairs or Error is set.
type ComparisonReport struct {
	ID      string        `json:"id"`
	Labeled []LabeledDiff `json:"labeled,omitempty"`
	Pairs   []PairDiff    `json:"pairs,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// CaseLoader loads comparison cases from a source.
type CaseLoader interface {
	Load(path string) ([]ComparisonCase, error)
}

// ReportSaver persists comparison reports.
type ReportSaver interface {
	Save(path string, reports []ComparisonReport) error
}

// Hunk is one region of a unified diff rebuilt as the text before and after
// the change. OldStart and NewStart are the 1-based file lines where the
// region begins.
type Hunk struct {
	Path     string
	OldStart int
	NewStart int
	Old      string
	New      string
}

// ID names the hunk by path and start lines, e.g. "main.go:-10,+12".
func (h Hunk) ID() string {
	return fmt.Sprintf("%s:-%d,+%d", h.Path, h.OldStart, h.NewStart)
}

// PatchParser splits unified diff content into hunks.
type PatchParser interface {
	Parse(r io.Reader) ([]Hunk, error)
}
