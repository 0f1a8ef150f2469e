// Package jsonl reads comparison cases and writes comparison reports as JSON
// Lines, one record per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/utsushi"
)

var _ utsushi.CaseLoader = (*Loader)(nil)

// Loader reads batch comparison cases from a file.
type Loader struct{}

// NewLoader returns a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// A case carries all of its texts on one line, so lines may be far longer
// than bufio.Scanner's default token size.
const maxCaseSize = 4 << 20

// Load opens path and decodes the cases in it. See Read.
func (l *Loader) Load(path string) ([]utsushi.ComparisonCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes one case per non-blank line of r. A case with no id is named
// after its line, e.g. "line-3".
func Read(r io.Reader) ([]utsushi.ComparisonCase, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxCaseSize)

	var cases []utsushi.ComparisonCase
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := decodeCase(text, n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan cases: %w", err)
	}
	return cases, nil
}

func decodeCase(text string, n int) (utsushi.ComparisonCase, error) {
	var c utsushi.ComparisonCase
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return c, fmt.Errorf("case on line %d: %w", n, err)
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("line-%d", n)
	}
	return c, nil
}
