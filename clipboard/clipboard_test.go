package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/utsushi/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_CopyPaste(t *testing.T) {
	// Not parallel: the system clipboard is shared state.

	cb := clipboard.NewSystem()
	if atotto.Unsupported {
		assert.ErrorIs(t, cb.Copy("x"), clipboard.ErrUnsupported)
		t.Skip("clipboard not available, skipping round trip")
	}

	testContent := "test clipboard content from utsushi"
	if err := cb.Copy(testContent); err != nil {
		// Tools can be installed without a display to talk to (headless CI).
		t.Skipf("clipboard not usable: %v", err)
	}

	got, err := cb.Paste()
	require.NoError(t, err)
	assert.Equal(t, testContent, got)
}
