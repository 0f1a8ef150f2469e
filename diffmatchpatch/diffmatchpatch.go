// Package diffmatchpatch provides alignment and similarity scoring backed by
// the go-diff implementation of Myers' algorithm.
package diffmatchpatch

import (
	"unicode/utf8"

	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/lcs"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var (
	_ utsushi.Aligner          = (*Aligner)(nil)
	_ utsushi.SimilarityScorer = (*Scorer)(nil)
)

// newMatcher returns a go-diff instance without a time budget. With a budget
// the result would depend on machine speed.
func newMatcher() *dmp.DiffMatchPatch {
	m := dmp.New()
	m.DiffTimeout = 0
	return m
}

// Scorer scores line similarity from a character-level alignment.
type Scorer struct {
	matcher *dmp.DiffMatchPatch
}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{matcher: newMatcher()}
}

// Similarity returns the number of characters in equal runs divided by the
// length of the longer string. Identical strings score 1; a non-empty string
// against an empty one scores 0. Lengths are counted in runes.
func (s *Scorer) Similarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	matched := 0
	for _, d := range s.matcher.DiffMain(s1, s2, false) {
		if d.Type == dmp.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	longest := max(utf8.RuneCountInString(s1), utf8.RuneCountInString(s2))
	return float64(matched) / float64(longest)
}

// maxItems is the number of distinct items that fit in the rune alphabet once
// the surrogate range is skipped.
const maxItems = utf8.MaxRune + 1 - (surrogateMax - surrogateMin + 1)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Aligner computes edit scripts by mapping every distinct item to a rune and
// running go-diff over the rune sequences. This is the same technique go-diff
// uses for line mode, applied to pre-split items.
type Aligner struct {
	matcher  *dmp.DiffMatchPatch
	fallback utsushi.Aligner
}

// NewAligner creates a new Aligner.
func NewAligner() *Aligner {
	return &Aligner{
		matcher:  newMatcher(),
		fallback: lcs.NewAligner(),
	}
}

// Align returns the edit script transforming a into b. Inputs with more
// distinct items than the rune alphabet can encode are aligned with the LCS
// aligner instead.
func (al *Aligner) Align(a, b []string) []utsushi.Edit {
	ra, rb, ok := encode(a, b)
	if !ok {
		return al.fallback.Align(a, b)
	}

	var edits []utsushi.Edit
	add := func(op utsushi.Op, items []string) {
		if len(items) == 0 {
			return
		}
		if last := len(edits) - 1; last >= 0 && edits[last].Op == op {
			edits[last].Lines = append(edits[last].Lines, items...)
			return
		}
		edits = append(edits, utsushi.Edit{Op: op, Lines: append([]string(nil), items...)})
	}

	ai, bi := 0, 0
	for _, d := range al.matcher.DiffMainRunes(ra, rb, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case dmp.DiffEqual:
			add(utsushi.OpEqual, a[ai:ai+n])
			ai += n
			bi += n
		case dmp.DiffDelete:
			add(utsushi.OpDelete, a[ai:ai+n])
			ai += n
		case dmp.DiffInsert:
			add(utsushi.OpInsert, b[bi:bi+n])
			bi += n
		}
	}
	return edits
}

// encode maps each distinct item of a and b to its own rune.
func encode(a, b []string) (ra, rb []rune, ok bool) {
	index := make(map[string]rune, len(a)+len(b))
	next := 0
	toRunes := func(items []string) []rune {
		out := make([]rune, len(items))
		for i, item := range items {
			r, seen := index[item]
			if !seen {
				r = itemRune(next)
				index[item] = r
				next++
			}
			out[i] = r
		}
		return out
	}

	ra = toRunes(a)
	rb = toRunes(b)
	if next > maxItems {
		return nil, nil, false
	}
	return ra, rb, true
}

// itemRune returns the n-th valid rune, skipping surrogates so that every rune
// survives conversion to and from UTF-8.
func itemRune(n int) rune {
	if n >= surrogateMin {
		n += surrogateMax - surrogateMin + 1
	}
	return rune(n)
}
