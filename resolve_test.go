package utsushi_test

import (
	"testing"

	"github.com/fwojciec/utsushi"
	"github.com/fwojciec/utsushi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedScorer returns a scorer that always reports the given similarity.
func fixedScorer(score float64) *mock.SimilarityScorer {
	return &mock.SimilarityScorer{
		SimilarityFn: func(s1, s2 string) float64 { return score },
	}
}

// wholeLineWords returns a word comparer that marks whole lines as changed.
func wholeLineWords() *mock.WordComparer {
	return &mock.WordComparer{
		CompareWordsFn: func(a, b string) (left, right []utsushi.WordSpan) {
			return []utsushi.WordSpan{{Text: a, Kind: utsushi.SpanRemoved}},
				[]utsushi.WordSpan{{Text: b, Kind: utsushi.SpanAdded}}
		},
	}
}

func unchanged(n int, s string) utsushi.LineRecord {
	return utsushi.LineRecord{LineNumber: n, Content: s, Kind: utsushi.LineUnchanged}
}

func removed(n int, s string) utsushi.LineRecord {
	return utsushi.LineRecord{LineNumber: n, Content: s, Kind: utsushi.LineRemoved}
}

func added(n int, s string) utsushi.LineRecord {
	return utsushi.LineRecord{LineNumber: n, Content: s, Kind: utsushi.LineAdded}
}

var empty = utsushi.LineRecord{Kind: utsushi.LineEmpty}

func TestResolve_EqualOnly(t *testing.T) {
	t.Parallel()

	edits := []utsushi.Edit{{Op: utsushi.OpEqual, Lines: []string{"a", "b"}}}

	result := utsushi.Resolve(edits, fixedScorer(1), wholeLineWords())

	assert.Equal(t, []utsushi.LineRecord{unchanged(1, "a"), unchanged(2, "b")}, result.Left)
	assert.Equal(t, []utsushi.LineRecord{unchanged(1, "a"), unchanged(2, "b")}, result.Right)
	assert.Equal(t, utsushi.Stats{Unchanged: 2}, result.Stats)
}

func TestResolve_NoEdits(t *testing.T) {
	t.Parallel()

	result := utsushi.Resolve(nil, fixedScorer(1), wholeLineWords())

	assert.NotNil(t, result.Left)
	assert.NotNil(t, result.Right)
	assert.Empty(t, result.Left)
	assert.Equal(t, utsushi.Stats{}, result.Stats)
}

func TestResolve_SimilarPairBecomesChanged(t *testing.T) {
	t.Parallel()

	edits := []utsushi.Edit{
		{Op: utsushi.OpEqual, Lines: []string{"keep"}},
		{Op: utsushi.OpDelete, Lines: []string{"old"}},
		{Op: utsushi.OpInsert, Lines: []string{"new"}},
	}

	result := utsushi.Resolve(edits, fixedScorer(0.31), wholeLineWords())

	require.Len(t, result.Left, 2)
	require.Len(t, result.Right, 2)
	assert.Equal(t, utsushi.LineRecord{
		LineNumber: 2,
		Content:    "old",
		Kind:       utsushi.LineChanged,
		Spans:      []utsushi.WordSpan{{Text: "old", Kind: utsushi.SpanRemoved}},
	}, result.Left[1])
	assert.Equal(t, utsushi.LineRecord{
		LineNumber: 2,
		Content:    "new",
		Kind:       utsushi.LineChanged,
		Spans:      []utsushi.WordSpan{{Text: "new", Kind: utsushi.SpanAdded}},
	}, result.Right[1])
	assert.Equal(t, utsushi.Stats{Changed: 1, Unchanged: 1}, result.Stats)
}

func TestResolve_ThresholdIsExclusive(t *testing.T) {
	t.Parallel()

	edits := []utsushi.Edit{
		{Op: utsushi.OpDelete, Lines: []string{"old"}},
		{Op: utsushi.OpInsert, Lines: []string{"new"}},
	}
	wordsCalled := false
	words := &mock.WordComparer{
		CompareWordsFn: func(a, b string) (left, right []utsushi.WordSpan) {
			wordsCalled = true
			return nil, nil
		},
	}

	result := utsushi.Resolve(edits, fixedScorer(utsushi.ChangedLineThreshold), words)

	assert.Equal(t, []utsushi.LineRecord{removed(1, "old"), empty}, result.Left)
	assert.Equal(t, []utsushi.LineRecord{empty, added(1, "new")}, result.Right)
	assert.Equal(t, utsushi.Stats{Added: 1, Removed: 1}, result.Stats)
	assert.False(t, wordsCalled, "word diff is only computed for changed pairs")
}

func TestResolve_UnevenBlock(t *testing.T) {
	t.Parallel()

	t.Run("more removed than added", func(t *testing.T) {
		t.Parallel()

		edits := []utsushi.Edit{
			{Op: utsushi.OpDelete, Lines: []string{"r1", "r2", "r3"}},
			{Op: utsushi.OpInsert, Lines: []string{"a1"}},
			{Op: utsushi.OpEqual, Lines: []string{"tail"}},
		}

		result := utsushi.Resolve(edits, fixedScorer(0.9), wholeLineWords())

		require.Len(t, result.Left, 4)
		assert.Equal(t, utsushi.LineChanged, result.Left[0].Kind)
		assert.Equal(t, utsushi.LineChanged, result.Right[0].Kind)
		assert.Equal(t, removed(2, "r2"), result.Left[1])
		assert.Equal(t, empty, result.Right[1])
		assert.Equal(t, removed(3, "r3"), result.Left[2])
		assert.Equal(t, empty, result.Right[2])
		assert.Equal(t, unchanged(4, "tail"), result.Left[3])
		assert.Equal(t, unchanged(2, "tail"), result.Right[3])
		assert.Equal(t, utsushi.Stats{Removed: 2, Changed: 1, Unchanged: 1}, result.Stats)
	})

	t.Run("more added than removed", func(t *testing.T) {
		t.Parallel()

		edits := []utsushi.Edit{
			{Op: utsushi.OpDelete, Lines: []string{"r1"}},
			{Op: utsushi.OpInsert, Lines: []string{"a1", "a2"}},
		}

		result := utsushi.Resolve(edits, fixedScorer(0.9), wholeLineWords())

		require.Len(t, result.Left, 2)
		assert.Equal(t, empty, result.Left[1])
		assert.Equal(t, added(2, "a2"), result.Right[1])
		assert.Equal(t, utsushi.Stats{Added: 1, Changed: 1}, result.Stats)
	})
}

func TestResolve_InsertWithoutDelete(t *testing.T) {
	t.Parallel()

	scorerCalled := false
	scorer := &mock.SimilarityScorer{
		SimilarityFn: func(s1, s2 string) float64 {
			scorerCalled = true
			return 1
		},
	}
	edits := []utsushi.Edit{
		{Op: utsushi.OpEqual, Lines: []string{"a"}},
		{Op: utsushi.OpInsert, Lines: []string{"b", "c"}},
	}

	result := utsushi.Resolve(edits, scorer, wholeLineWords())

	assert.Equal(t, []utsushi.LineRecord{unchanged(1, "a"), empty, empty}, result.Left)
	assert.Equal(t, []utsushi.LineRecord{unchanged(1, "a"), added(2, "b"), added(3, "c")}, result.Right)
	assert.Equal(t, utsushi.Stats{Added: 2, Unchanged: 1}, result.Stats)
	assert.False(t, scorerCalled, "nothing to pair against")
}

func TestResolve_InsertBeforeDeleteIsNotPaired(t *testing.T) {
	t.Parallel()

	edits := []utsushi.Edit{
		{Op: utsushi.OpInsert, Lines: []string{"new"}},
		{Op: utsushi.OpDelete, Lines: []string{"old"}},
	}

	result := utsushi.Resolve(edits, fixedScorer(1), wholeLineWords())

	assert.Equal(t, []utsushi.LineRecord{empty, removed(1, "old")}, result.Left)
	assert.Equal(t, []utsushi.LineRecord{added(1, "new"), empty}, result.Right)
}

func TestResolve_MergesSplitRuns(t *testing.T) {
	t.Parallel()

	// Aligners coalesce runs, but the resolver must not depend on it.
	edits := []utsushi.Edit{
		{Op: utsushi.OpDelete, Lines: []string{"r1"}},
		{Op: utsushi.OpDelete, Lines: []string{"r2"}},
		{Op: utsushi.OpInsert, Lines: []string{"a1"}},
		{Op: utsushi.OpInsert, Lines: []string{"a2"}},
	}

	result := utsushi.Resolve(edits, fixedScorer(0.9), wholeLineWords())

	require.Len(t, result.Left, 2)
	assert.Equal(t, "r2", result.Left[1].Content)
	assert.Equal(t, "a2", result.Right[1].Content)
	assert.Equal(t, utsushi.Stats{Changed: 2}, result.Stats)
}

func TestResolve_StatsMatchRowCount(t *testing.T) {
	t.Parallel()

	edits := []utsushi.Edit{
		{Op: utsushi.OpEqual, Lines: []string{"a"}},
		{Op: utsushi.OpDelete, Lines: []string{"b", "c"}},
		{Op: utsushi.OpInsert, Lines: []string{"x", "y", "z"}},
		{Op: utsushi.OpEqual, Lines: []string{"d"}},
		{Op: utsushi.OpDelete, Lines: []string{"e"}},
	}
	scorer := &mock.SimilarityScorer{
		SimilarityFn: func(s1, s2 string) float64 {
			if s1 == "b" {
				return 1
			}
			return 0
		},
	}

	result := utsushi.Resolve(edits, scorer, wholeLineWords())

	assert.Len(t, result.Right, len(result.Left))
	assert.Equal(t, len(result.Left), result.Stats.Total())
	assert.Equal(t, utsushi.Stats{Added: 2, Removed: 2, Changed: 1, Unchanged: 2}, result.Stats)
}
