package mock

import (
	"io"

	"github.com/fwojciec/utsushi"
)

// Compile-time interface verification.
var (
	_ utsushi.CaseLoader  = (*CaseLoader)(nil)
	_ utsushi.ReportSaver = (*ReportSaver)(nil)
	_ utsushi.PatchParser = (*PatchParser)(nil)
)

// CaseLoader is a mock implementation of utsushi.CaseLoader.
type CaseLoader struct {
	LoadFn func(path string) ([]utsushi.ComparisonCase, error)
}

func (m *CaseLoader) Load(path string) ([]utsushi.ComparisonCase, error) {
	return m.LoadFn(path)
}

// ReportSaver is a mock implementation of utsushi.ReportSaver.
type ReportSaver struct {
	SaveFn func(path string, reports []utsushi.ComparisonReport) error
}

func (m *ReportSaver) Save(path string, reports []utsushi.ComparisonReport) error {
	return m.SaveFn(path, reports)
}

// PatchParser is a mock implementation of utsushi.PatchParser.
type PatchParser struct {
	ParseFn func(r io.Reader) ([]utsushi.Hunk, error)
}

func (m *PatchParser) Parse(r io.Reader) ([]utsushi.Hunk, error) {
	return m.ParseFn(r)
}
