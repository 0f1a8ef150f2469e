// Package chroma provides syntax-aware word tokens using the chroma lexers.
package chroma

import (
	"errors"
	"fmt"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/worddiff"
)

// ErrUnknownLanguage is returned when no chroma lexer matches a language name.
var ErrUnknownLanguage = errors.New("unknown language")

// Compile-time interface verification.
var _ utsushi.Tokenizer = (*Tokenizer)(nil)

// Tokenizer splits a line into the tokens a syntax highlighter would see, so a
// changed keyword, literal or comment is compared as one unit.
type Tokenizer struct {
	lexer    chromalib.Lexer
	fallback utsushi.Tokenizer
}

// NewTokenizer creates a tokenizer for the named language ("go", "python",
// "javascript", ...). Lines the lexer cannot reproduce exactly fall back to
// UAX #29 word tokens.
func NewTokenizer(language string) (*Tokenizer, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	return &Tokenizer{lexer: lexer, fallback: worddiff.NewSegmenter()}, nil
}

// Tokenize splits s into lexer tokens.
func (t *Tokenizer) Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	iterator, err := t.lexer.Tokenise(nil, s)
	if err != nil {
		return t.fallback.Tokenize(s)
	}

	var tokens []string
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		if token.Value != "" {
			tokens = append(tokens, token.Value)
		}
	}

	// Lexers configured with EnsureNL append a newline the input never had.
	if n := len(tokens); n > 0 && !strings.HasSuffix(s, "\n") {
		last := strings.TrimSuffix(tokens[n-1], "\n")
		if last == "" {
			tokens = tokens[:n-1]
		} else {
			tokens[n-1] = last
		}
	}

	if strings.Join(tokens, "") != s {
		return t.fallback.Tokenize(s)
	}
	return tokens
}
