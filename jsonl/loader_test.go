package jsonl_test

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/fwojciec/utsushi/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("decodes base mode and all-pairs cases", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "cases.jsonl")
		content := `{"id":"greeting","base":"hello","texts":["hallo","hullo"]}
{"id":"all-pairs","texts":["a","b","c"]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cases, err := jsonl.NewLoader().Load(path)

		require.NoError(t, err)
		require.Len(t, cases, 2)
		assert.Equal(t, "greeting", cases[0].ID)
		assert.Equal(t, "hello", cases[0].Base)
		assert.Equal(t, []string{"hallo", "hullo"}, cases[0].Texts)
		assert.Equal(t, "all-pairs", cases[1].ID)
		assert.Empty(t, cases[1].Base)
		assert.Len(t, cases[1].Texts, 3)
	})

	t.Run("numbers cases without an id", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "cases.jsonl")
		content := "\n{\"texts\":[\"a\",\"b\"]}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cases, err := jsonl.NewLoader().Load(path)

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Equal(t, "line-2", cases[0].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := jsonl.NewLoader().Load("/nonexistent/path.jsonl")

		assert.Error(t, err)
	})

	t.Run("malformed case names its line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.jsonl")
		content := `{"id":"a","texts":[]}
not valid json
{"id":"b","texts":[]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := jsonl.NewLoader().Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("empty file has no cases", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "empty.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		cases, err := jsonl.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Empty(t, cases)
	})
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("skips blank lines and keeps line numbering", func(t *testing.T) {
		t.Parallel()

		input := "{\"id\":\"x\",\"texts\":[\"a\",\"b\"]}\n   \n{\"texts\":[\"c\",\"d\"]}\n"

		cases, err := jsonl.Read(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, cases, 2)
		assert.Equal(t, "x", cases[0].ID)
		assert.Equal(t, "line-3", cases[1].ID)
		assert.Equal(t, []string{"c", "d"}, cases[1].Texts)
	})

	t.Run("accepts a case longer than the default scanner buffer", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 200<<10)
		input := `{"id":"big","texts":["` + long + `","y"]}`

		cases, err := jsonl.Read(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, cases, 1)
		assert.Len(t, cases[0].Texts[0], 200<<10)
	})
}
