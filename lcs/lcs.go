// Package lcs aligns sequences using a longest common subsequence table.
package lcs

import "github.com/fwojciec/utsushi"

// Compile-time interface verification.
var _ utsushi.Aligner = (*Aligner)(nil)

// Aligner computes minimal edit scripts with an O(n×m) dynamic programming table.
// The common prefix and suffix are matched before the table is built, so the
// cost only depends on the size of the differing middle.
type Aligner struct{}

// NewAligner creates a new Aligner.
func NewAligner() *Aligner {
	return &Aligner{}
}

// Align returns the edit script transforming a into b. Within each gap between
// matched items the deleted items come before the inserted ones.
func (al *Aligner) Align(a, b []string) []utsushi.Edit {
	prefix := commonPrefix(a, b)
	suffix := commonSuffix(a[prefix:], b[prefix:])

	var s script
	s.add(utsushi.OpEqual, a[:prefix])
	alignMiddle(&s, a[prefix:len(a)-suffix], b[prefix:len(b)-suffix])
	s.add(utsushi.OpEqual, a[len(a)-suffix:])
	return s.edits
}

func commonPrefix(a, b []string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffix(a, b []string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// alignMiddle fills the LCS table for a and b and appends the resulting edits.
func alignMiddle(s *script, a, b []string) {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		s.add(utsushi.OpDelete, a)
		s.add(utsushi.OpInsert, b)
		return
	}

	// Flat table: table[i*stride+j] is the LCS length of a[:i] and b[:j].
	stride := n + 1
	table := make([]int, (m+1)*stride)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[i*stride+j] = table[(i-1)*stride+j-1] + 1
			case table[(i-1)*stride+j] > table[i*stride+j-1]:
				table[i*stride+j] = table[(i-1)*stride+j]
			default:
				table[i*stride+j] = table[i*stride+j-1]
			}
		}
	}

	// Backtrack to find matching positions.
	type match struct{ ai, bi int }
	matches := make([]match, 0, table[m*stride+n])
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			matches = append(matches, match{i - 1, j - 1})
			i--
			j--
		case table[(i-1)*stride+j] > table[i*stride+j-1]:
			i--
		default:
			j--
		}
	}

	ai, bi := 0, 0
	for k := len(matches) - 1; k >= 0; k-- {
		mt := matches[k]
		s.add(utsushi.OpDelete, a[ai:mt.ai])
		s.add(utsushi.OpInsert, b[bi:mt.bi])
		s.add(utsushi.OpEqual, a[mt.ai:mt.ai+1])
		ai, bi = mt.ai+1, mt.bi+1
	}
	s.add(utsushi.OpDelete, a[ai:])
	s.add(utsushi.OpInsert, b[bi:])
}

// script accumulates edits, merging runs that share an operation.
type script struct {
	edits []utsushi.Edit
}

func (s *script) add(op utsushi.Op, items []string) {
	if len(items) == 0 {
		return
	}
	if last := len(s.edits) - 1; last >= 0 && s.edits[last].Op == op {
		s.edits[last].Lines = append(s.edits[last].Lines, items...)
		return
	}
	s.edits = append(s.edits, utsushi.Edit{Op: op, Lines: append([]string(nil), items...)})
}
