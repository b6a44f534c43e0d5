package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/textbox/internal/glyph"
)

// KeyKind classifies a key event independently of the terminal library
// that produced it.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyWordLeft
	KeyWordRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyMarkToggle
	KeyUndo
	KeyRedo
	KeySelectAll
)

var keyKindNames = [...]string{
	KeyNone:       "none",
	KeyRune:       "rune",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyUp:         "up",
	KeyDown:       "down",
	KeyWordLeft:   "word-left",
	KeyWordRight:  "word-right",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdown",
	KeyMarkToggle: "mark",
	KeyUndo:       "undo",
	KeyRedo:       "redo",
	KeySelectAll:  "select-all",
}

func (k KeyKind) String() string {
	if k < 0 || int(k) >= len(keyKindNames) {
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
	return keyKindNames[k]
}

// KeyEvent is one keystroke. Rune is set for KeyRune only.
type KeyEvent struct {
	Kind  KeyKind
	Rune  rune
	Ctrl  bool
	Alt   bool
	Shift bool
}

func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Ctrl {
		sb.WriteString("ctrl+")
	}
	if e.Alt {
		sb.WriteString("alt+")
	}
	if e.Shift {
		sb.WriteString("shift+")
	}
	if e.Kind == KeyRune {
		sb.WriteRune(e.Rune)
	} else {
		sb.WriteString(e.Kind.String())
	}
	return sb.String()
}

// Result tells the host what became of a key event.
type Result int

const (
	// Unhandled keys should be offered to the host.
	Unhandled Result = iota
	Handled
	MoveFocusLeft
	MoveFocusRight
	MoveFocusUp
	MoveFocusDown
	MoveFocusNext
	MoveFocusPrevious
)

func (r Result) String() string {
	switch r {
	case Unhandled:
		return "unhandled"
	case Handled:
		return "handled"
	case MoveFocusLeft:
		return "move-focus-left"
	case MoveFocusRight:
		return "move-focus-right"
	case MoveFocusUp:
		return "move-focus-up"
	case MoveFocusDown:
		return "move-focus-down"
	case MoveFocusNext:
		return "move-focus-next"
	case MoveFocusPrevious:
		return "move-focus-previous"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// MovesFocus reports whether r asks the host to focus another component.
func (r Result) MovesFocus() bool {
	return r >= MoveFocusLeft && r <= MoveFocusPrevious
}

// HandleKey applies one key event. Failures inside dispatch are logged and
// reported as Handled; they never reach the caller.
func (t *TextBox) HandleKey(ev KeyEvent) Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.preserveWantCol = false
	res, err := t.dispatchSafe(ev)
	if err != nil {
		t.logger.Error("key dispatch failed", "key", ev, "caret", t.caret, "err", err)
		t.fixCaret()
		res = Handled
	}
	if !t.preserveWantCol {
		t.wantCol = -1
	}
	t.commandFinished()
	return res
}

func (t *TextBox) dispatchSafe(ev KeyEvent) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errDispatchPanic, r)
		}
	}()
	return t.dispatch(ev)
}

func (t *TextBox) dispatch(ev KeyEvent) (Result, error) {
	switch ev.Kind {
	case KeyRune:
		return t.dispatchRune(ev)

	case KeyBackspace:
		if !t.readOnly {
			t.backspace()
		}
		return Handled, nil
	case KeyDelete:
		if !t.readOnly {
			t.deleteForward()
		}
		return Handled, nil
	case KeyEnter:
		if t.readOnly {
			return Handled, nil
		}
		return t.enter(), nil
	case KeyTab:
		if ev.Shift {
			return MoveFocusPrevious, nil
		}
		return MoveFocusNext, nil

	case KeyLeft:
		t.checkSelectionStart(ev.Shift)
		if !t.left() && t.hFocus {
			return MoveFocusLeft, nil
		}
		return Handled, nil
	case KeyRight:
		t.checkSelectionStart(ev.Shift)
		if !t.right() && t.hFocus {
			return MoveFocusRight, nil
		}
		return Handled, nil
	case KeyUp:
		t.checkSelectionStart(ev.Shift)
		if !t.up() && t.vFocus {
			return MoveFocusUp, nil
		}
		return Handled, nil
	case KeyDown:
		t.checkSelectionStart(ev.Shift)
		if !t.down() && t.vFocus {
			return MoveFocusDown, nil
		}
		return Handled, nil
	case KeyWordLeft:
		t.checkSelectionStart(ev.Shift)
		t.wordLeft()
		return Handled, nil
	case KeyWordRight:
		t.checkSelectionStart(ev.Shift)
		t.wordRight()
		return Handled, nil
	case KeyHome:
		t.checkSelectionStart(ev.Shift)
		t.home()
		return Handled, nil
	case KeyEnd:
		t.checkSelectionStart(ev.Shift)
		t.end()
		return Handled, nil
	case KeyPageUp:
		t.checkSelectionStart(ev.Shift)
		t.pageUp()
		return Handled, nil
	case KeyPageDown:
		t.checkSelectionStart(ev.Shift)
		t.pageDown()
		return Handled, nil

	case KeyMarkToggle:
		t.markOn = !t.markOn
		return Handled, nil
	case KeyUndo:
		if !t.readOnly {
			t.undo()
		}
		return Handled, nil
	case KeyRedo:
		if !t.readOnly {
			t.redo()
		}
		return Handled, nil
	case KeySelectAll:
		t.anchored = false
		t.selectAll()
		return Handled, nil
	}
	return Unhandled, nil
}

func (t *TextBox) dispatchRune(ev KeyEvent) (Result, error) {
	if ev.Ctrl {
		switch ev.Rune {
		case 'c':
			t.copySelection()
		case 'x':
			t.cutSelection()
		case 'v':
			if err := t.pasteClipboard(); err != nil {
				return Handled, err
			}
		case 'z':
			return t.dispatch(KeyEvent{Kind: KeyUndo})
		case 'y':
			return t.dispatch(KeyEvent{Kind: KeyRedo})
		case 'a':
			return t.dispatch(KeyEvent{Kind: KeySelectAll})
		default:
			return Unhandled, nil
		}
		return Handled, nil
	}
	if ev.Alt || glyph.IsControl(ev.Rune) {
		return Unhandled, nil
	}
	if !t.readOnly {
		t.insertRune(ev.Rune)
	}
	return Handled, nil
}
