// Package clipboard provides clipboards for text boxes: the system
// clipboard and an in-process one for hosts without a system clipboard.
package clipboard

import (
	"errors"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by System when no clipboard utility is
// available on the host.
var ErrUnsupported = errors.New("clipboard: system clipboard unavailable")

// System reads and writes the operating system clipboard.
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	// Windows utilities return CRLF line ends.
	return strings.ReplaceAll(s, "\r\n", "\n"), nil
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(s)
}

// Memory is a clipboard private to the process. The zero value is empty
// and ready to use. It is safe for concurrent use.
type Memory struct {
	mu sync.Mutex
	s  string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

// Clipboard is the text clipboard a text box copies to and pastes from.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Fallback uses Primary and falls back to Secondary when Primary fails.
// Writes go to both so a later fallback read sees the latest text.
type Fallback struct {
	Primary   Clipboard
	Secondary Clipboard
}

func (f Fallback) ReadText() (string, error) {
	if s, err := f.Primary.ReadText(); err == nil {
		return s, nil
	}
	return f.Secondary.ReadText()
}

func (f Fallback) WriteText(s string) error {
	errP := f.Primary.WriteText(s)
	errS := f.Secondary.WriteText(s)
	if errP != nil && errS != nil {
		return errors.Join(errP, errS)
	}
	return nil
}

// Default returns the system clipboard backed by an in-process one.
func Default() Fallback {
	return Fallback{Primary: System{}, Secondary: &Memory{}}
}
