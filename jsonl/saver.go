package jsonl

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/utsushi"
)

// Compile-time interface verification.
var _ utsushi.ReportSaver = (*Saver)(nil)

// Saver writes ComparisonReport records to JSONL files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save writes reports to a JSONL file, replacing its content and creating
// parent directories if needed.
func (s *Saver) Save(path string, reports []utsushi.ComparisonReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, reports); err != nil {
		return err
	}
	return f.Close()
}

// Write encodes reports to w, one JSON object per line.
func Write(w io.Writer, reports []utsushi.ComparisonReport) error {
	enc := json.NewEncoder(w)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
