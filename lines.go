package utsushi

import "strings"

var lineBreakReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits text into lines. CRLF and lone CR count as line breaks.
// A final line break does not start a new line, so "a\n" yields ["a"], while
// empty text yields a single empty line.
func SplitLines(text string) []string {
	if strings.ContainsRune(text, '\r') {
		text = lineBreakReplacer.Replace(text)
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBlank reports whether text is empty or contains only whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
