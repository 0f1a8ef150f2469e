package utsushi_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/utsushi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Total(t *testing.T) {
	t.Parallel()

	s := utsushi.Stats{Added: 1, Removed: 2, Changed: 3, Unchanged: 4}

	assert.Equal(t, 10, s.Total())
}

func TestLineRecord_JSON(t *testing.T) {
	t.Parallel()

	t.Run("empty record omits line number and spans", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(utsushi.LineRecord{Kind: utsushi.LineEmpty})

		require.NoError(t, err)
		assert.JSONEq(t, `{"content":"","kind":"empty"}`, string(data))
	})

	t.Run("changed record carries spans", func(t *testing.T) {
		t.Parallel()

		rec := utsushi.LineRecord{
			LineNumber: 3,
			Content:    "hello world",
			Kind:       utsushi.LineChanged,
			Spans: []utsushi.WordSpan{
				{Text: "hello ", Kind: utsushi.SpanUnchanged},
				{Text: "world", Kind: utsushi.SpanRemoved},
			},
		}

		data, err := json.Marshal(rec)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"line_number": 3,
			"content": "hello world",
			"kind": "changed",
			"spans": [
				{"text": "hello ", "kind": "unchanged"},
				{"text": "world", "kind": "removed"}
			]
		}`, string(data))

		var decoded utsushi.LineRecord
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, rec, decoded)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		var rec utsushi.LineRecord
		err := json.Unmarshal([]byte(`{"content":"x","kind":"moved"}`), &rec)

		assert.Error(t, err)
	})
}

func TestKinds_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unchanged", utsushi.LineUnchanged.String())
	assert.Equal(t, "empty", utsushi.LineEmpty.String())
	assert.Equal(t, "LineKind(42)", utsushi.LineKind(42).String())
	assert.Equal(t, "added", utsushi.SpanAdded.String())
	assert.Equal(t, "delete", utsushi.OpDelete.String())
	assert.Equal(t, "modified", utsushi.ChangeModified.String())
}

func TestDiffResult_Offset(t *testing.T) {
	t.Parallel()

	d := utsushi.DiffResult{
		Left: []utsushi.LineRecord{
			{LineNumber: 1, Content: "a", Kind: utsushi.LineUnchanged},
			{LineNumber: 2, Content: "b", Kind: utsushi.LineRemoved},
		},
		Right: []utsushi.LineRecord{
			{LineNumber: 1, Content: "a", Kind: utsushi.LineUnchanged},
			{Kind: utsushi.LineEmpty},
		},
		Stats: utsushi.Stats{Removed: 1, Unchanged: 1},
	}

	got := d.Offset(9, 19)

	assert.Equal(t, 10, got.Left[0].LineNumber)
	assert.Equal(t, 11, got.Left[1].LineNumber)
	assert.Equal(t, 20, got.Right[0].LineNumber)
	assert.Equal(t, 0, got.Right[1].LineNumber, "empty records stay unnumbered")
	assert.Equal(t, d.Stats, got.Stats)
	assert.Equal(t, 1, d.Left[0].LineNumber, "receiver is untouched")
}
