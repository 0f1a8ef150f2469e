// Package clipboard provides clipboard operations via the platform clipboard tools.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/utsushi"
)

// ErrUnsupported is returned when no clipboard tool is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Ensure System implements the Clipboard interface.
var _ utsushi.Clipboard = (*System)(nil)

// System implements Clipboard using the system clipboard (pbcopy/pbpaste,
// xclip/xsel/wl-clipboard or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(content)
}

// Paste reads the current content of the system clipboard.
func (s *System) Paste() (string, error) {
	if atotto.Unsupported {
		return "", ErrUnsupported
	}
	return atotto.ReadAll()
}
