package worddiff

import (
	"regexp"

	"github.com/fwojciec/utsushi"
)

var _ utsushi.Tokenizer = (*CodeTokenizer)(nil)

// codeToken matches one source-code token. The final alternative catches any
// remaining rune, so matches always cover the whole input.
var codeToken = regexp.MustCompile(
	`[\p{L}_][\p{L}\p{N}_]*|` + // identifiers
		`0[xX][0-9a-fA-F_]+|[0-9][0-9_]*\.?[0-9_]*(?:[eE][+-]?[0-9]+)?|` + // numbers
		`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|` + "`[^`]*`|" + // string literals
		`[+\-*/=<>!&|^%:~?]+|` + // operators
		`[(){}\[\];,.@#$]|` + // punctuation
		`\s+|` + // whitespace
		`.`,
)

// CodeTokenizer splits lines of source code into identifiers, numbers, string
// literals, operator runs and single punctuation marks. A changed string
// literal shows up as one token rather than word by word.
type CodeTokenizer struct{}

// NewCodeTokenizer creates a new CodeTokenizer.
func NewCodeTokenizer() *CodeTokenizer {
	return &CodeTokenizer{}
}

// Tokenize splits s into code tokens.
func (c *CodeTokenizer) Tokenize(s string) []string {
	return codeToken.FindAllString(s, -1)
}
