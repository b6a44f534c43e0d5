package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/glyph"
)

// Mode selects between single-line and multi-line editing.
type Mode int

const (
	// ModeAuto picks multi-line when the initial text contains '\n'.
	ModeAuto Mode = iota
	ModeSingleLine
	ModeMultiLine
)

// Switch is a tri-state option whose zero value means "use the default".
type Switch int

const (
	SwitchDefault Switch = iota
	SwitchOn
	SwitchOff
)

func (s Switch) resolve(def bool) bool {
	switch s {
	case SwitchOn:
		return true
	case SwitchOff:
		return false
	default:
		return def
	}
}

// Config configures a TextBox and the Model hosting it.
type Config struct {
	// Initial text.
	Text string
	Mode Mode

	ReadOnly  bool
	CaretWarp bool

	// MaxLineLength caps typed input per line, in characters. 0 disables
	// the cap.
	MaxLineLength int

	// Mask is drawn instead of every character when non-zero.
	Mask rune

	// Focus switching at the buffer edges. Vertical defaults to on,
	// horizontal defaults to on for single-line text boxes only.
	VerticalFocusSwitching   Switch
	HorizontalFocusSwitching Switch

	// OnSingleLineEnter decides the result of Enter in single-line mode.
	// Default: MoveFocusNext.
	OnSingleLineEnter func() Result

	// Recorder receives undo pieces. When nil and HistoryLimit > 0 a
	// buffer.History with that limit is attached.
	Recorder     buffer.Recorder
	HistoryLimit int

	Clipboard Clipboard

	// Logger receives dispatch failures. Default: log.Default().
	Logger *log.Logger

	// Rendering options (Model only).
	Style          Style
	KeyMap         KeyMap
	Fill           rune
	HideScrollbars bool

	// OnChange is called on the Bubble Tea event loop after content
	// changes (Model only).
	OnChange func(ChangeEvent)
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Mask != 0 {
		if !isCellRune(c.Mask) {
			return fmt.Errorf("mask %q: %w", c.Mask, ErrInvalidMask)
		}
	}
	if c.Fill != 0 {
		if !isCellRune(c.Fill) {
			return fmt.Errorf("fill %q: %w", c.Fill, ErrInvalidFill)
		}
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("max line length %d: %w", c.MaxLineLength, ErrInvalidMaxLineLength)
	}
	if c.MaxLineLength > 0 {
		for i, line := range buffer.Ingest(c.Text, c.multiLine()) {
			if n := glyph.Len(line); n > c.MaxLineLength {
				return fmt.Errorf("max line length %d, line %d has %d characters: %w", c.MaxLineLength, i, n, ErrInvalidMaxLineLength)
			}
		}
	}
	return nil
}

func (c Config) multiLine() bool {
	switch c.Mode {
	case ModeMultiLine:
		return true
	case ModeSingleLine:
		return false
	default:
		return strings.ContainsRune(c.Text, '\n')
	}
}

// isCellRune reports whether r fills exactly one cell.
func isCellRune(r rune) bool {
	return !glyph.IsControl(r) && glyph.RuneWidth(r) == 1
}
