// Package compare drives line and word comparisons across two or more texts.
package compare

import (
	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/diffmatchpatch"
	"github.com/fwojciec/utsushi/lcs"
	"github.com/fwojciec/utsushi/worddiff"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the default number of pairs compared concurrently.
const DefaultWorkers = 4

// Comparer compares texts. It holds no per-call state and is safe for
// concurrent use as long as its collaborators are.
type Comparer struct {
	aligner utsushi.Aligner
	scorer  utsushi.SimilarityScorer
	words   utsushi.WordComparer
	workers int
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithAligner sets the line aligner.
func WithAligner(a utsushi.Aligner) Option {
	return func(c *Comparer) {
		c.aligner = a
	}
}

// WithScorer sets the similarity scorer that decides changed-line pairing.
func WithScorer(s utsushi.SimilarityScorer) Option {
	return func(c *Comparer) {
		c.scorer = s
	}
}

// WithWordComparer sets the word comparer used for changed lines.
func WithWordComparer(w utsushi.WordComparer) Option {
	return func(c *Comparer) {
		c.words = w
	}
}

// WithWorkers sets how many pairs CompareAll and CompareMultiple compute at
// once. Values below 2 compute pairs one after another.
func WithWorkers(n int) Option {
	return func(c *Comparer) {
		c.workers = n
	}
}

// New creates a Comparer using the LCS aligner, go-diff similarity scoring and
// UAX #29 word diffs unless overridden by options.
func New(opts ...Option) *Comparer {
	c := &Comparer{
		aligner: lcs.NewAligner(),
		scorer:  diffmatchpatch.NewScorer(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.words == nil {
		c.words = worddiff.NewDiffer(worddiff.WithAligner(c.aligner))
	}
	return c
}

// CompareLines compares two texts line by line. When exactly one text is
// empty every line of the other is one-sided; nothing is paired against it.
func (c *Comparer) CompareLines(a, b string) utsushi.DiffResult {
	edits := c.aligner.Align(splitSide(a, b), splitSide(b, a))
	return utsushi.Resolve(edits, c.scorer, c.words)
}

// splitSide returns the lines of text, or none when text is empty and other
// is not. Two empty texts still compare as one unchanged empty line.
func splitSide(text, other string) []string {
	if text == "" && other != "" {
		return nil
	}
	return utsushi.SplitLines(text)
}

// CompareWords compares two lines word by word.
func (c *Comparer) CompareWords(a, b string) (left, right []utsushi.WordSpan) {
	return c.words.CompareWords(a, b)
}

// CalculateSimilarity returns the similarity of two strings in [0, 1].
func (c *Comparer) CalculateSimilarity(s1, s2 string) float64 {
	return c.scorer.Similarity(s1, s2)
}

// ChangeType classifies how two lines relate.
func (c *Comparer) ChangeType(a, b string) utsushi.ChangeType {
	if a == b {
		return utsushi.ChangeIdentical
	}
	if c.scorer.Similarity(a, b) > utsushi.ModifiedLineThreshold {
		return utsushi.ChangeModified
	}
	return utsushi.ChangeDifferent
}

// CompareMultiple compares base against each non-blank text in others.
// Surviving texts are labeled "B", "C", ... in the order they appear.
func (c *Comparer) CompareMultiple(base string, others []string) []utsushi.LabeledDiff {
	kept := nonBlank(others)
	results := make([]utsushi.LabeledDiff, len(kept))
	c.run(len(kept), func(i int) {
		results[i] = utsushi.LabeledDiff{
			Label: Label(i + 1),
			Diff:  c.CompareLines(base, kept[i]),
		}
	})
	return results
}

// CompareAll compares every pair of non-blank texts. Pairs are ordered by the
// index of the first text, then of the second; indices refer to the texts left
// after blank ones are removed.
func (c *Comparer) CompareAll(texts []string) []utsushi.PairDiff {
	kept := nonBlank(texts)
	pairs := Pairs(len(kept))
	results := make([]utsushi.PairDiff, len(pairs))
	c.run(len(pairs), func(k int) {
		p := pairs[k]
		results[k] = utsushi.PairDiff{
			Left:  p[0],
			Right: p[1],
			Diff:  c.CompareLines(kept[p[0]], kept[p[1]]),
		}
	})
	return results
}

// run calls fn for every index in [0, n). Each call writes only its own slot,
// so the output order never depends on scheduling.
func (c *Comparer) run(n int, fn func(i int)) {
	if c.workers < 2 || n < 2 {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait() // fn never fails
}

// Pairs returns every index pair (i, j) with i < j < n, ordered by i then j.
func Pairs(n int) [][2]int {
	if n < 2 {
		return nil
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

func nonBlank(texts []string) []string {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		if !utsushi.IsBlank(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
