// Package mock provides test doubles for utsushi interfaces.
package mock

import "github.com/fwojciec/utsushi"

// Compile-time interface verification.
var (
	_ utsushi.Aligner          = (*Aligner)(nil)
	_ utsushi.SimilarityScorer = (*SimilarityScorer)(nil)
	_ utsushi.WordComparer     = (*WordComparer)(nil)
	_ utsushi.Tokenizer        = (*Tokenizer)(nil)
)

// Aligner is a mock implementation of utsushi.Aligner.
type Aligner struct {
	AlignFn func(a, b []string) []utsushi.Edit
}

func (m *Aligner) Align(a, b []string) []utsushi.Edit {
	return m.AlignFn(a, b)
}

// SimilarityScorer is a mock implementation of utsushi.SimilarityScorer.
type SimilarityScorer struct {
	SimilarityFn func(s1, s2 string) float64
}

func (m *SimilarityScorer) Similarity(s1, s2 string) float64 {
	return m.SimilarityFn(s1, s2)
}

// WordComparer is a mock implementation of utsushi.WordComparer.
type WordComparer struct {
	CompareWordsFn func(a, b string) (left, right []utsushi.WordSpan)
}

func (m *WordComparer) CompareWords(a, b string) (left, right []utsushi.WordSpan) {
	return m.CompareWordsFn(a, b)
}

// Tokenizer is a mock implementation of utsushi.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(s string) []string
}

func (m *Tokenizer) Tokenize(s string) []string {
	return m.TokenizeFn(s)
}
