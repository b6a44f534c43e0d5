package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the Model key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	PageUp, PageDown                          key.Binding
	ShiftPageUp, ShiftPageDown                key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab, ShiftTab     key.Binding

	MarkToggle key.Binding
	SelectAll  key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),

		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		ShiftPageUp:   key.NewBinding(key.WithKeys("shift+pgup"), key.WithHelp("shift+pgup", "select page up")),
		ShiftPageDown: key.NewBinding(key.WithKeys("shift+pgdown"), key.WithHelp("shift+pgdown", "select page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),

		MarkToggle: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "toggle mark")),
		SelectAll:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// isZero reports whether no binding was configured.
func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0 && len(km.Backspace.Keys()) == 0
}

// Translate maps a Bubble Tea key message to a KeyEvent. Plain runes and
// space become KeyRune events; keys without a binding yield false.
func (km KeyMap) Translate(msg tea.KeyMsg) (KeyEvent, bool) {
	bound := []struct {
		b  key.Binding
		ev KeyEvent
	}{
		{km.Left, KeyEvent{Kind: KeyLeft}},
		{km.Right, KeyEvent{Kind: KeyRight}},
		{km.Up, KeyEvent{Kind: KeyUp}},
		{km.Down, KeyEvent{Kind: KeyDown}},
		{km.ShiftLeft, KeyEvent{Kind: KeyLeft, Shift: true}},
		{km.ShiftRight, KeyEvent{Kind: KeyRight, Shift: true}},
		{km.ShiftUp, KeyEvent{Kind: KeyUp, Shift: true}},
		{km.ShiftDown, KeyEvent{Kind: KeyDown, Shift: true}},
		{km.WordLeft, KeyEvent{Kind: KeyWordLeft}},
		{km.WordRight, KeyEvent{Kind: KeyWordRight}},
		{km.ShiftWordLeft, KeyEvent{Kind: KeyWordLeft, Shift: true}},
		{km.ShiftWordRight, KeyEvent{Kind: KeyWordRight, Shift: true}},
		{km.Home, KeyEvent{Kind: KeyHome}},
		{km.End, KeyEvent{Kind: KeyEnd}},
		{km.ShiftHome, KeyEvent{Kind: KeyHome, Shift: true}},
		{km.ShiftEnd, KeyEvent{Kind: KeyEnd, Shift: true}},
		{km.PageUp, KeyEvent{Kind: KeyPageUp}},
		{km.PageDown, KeyEvent{Kind: KeyPageDown}},
		{km.ShiftPageUp, KeyEvent{Kind: KeyPageUp, Shift: true}},
		{km.ShiftPageDown, KeyEvent{Kind: KeyPageDown, Shift: true}},
		{km.Backspace, KeyEvent{Kind: KeyBackspace}},
		{km.Delete, KeyEvent{Kind: KeyDelete}},
		{km.Enter, KeyEvent{Kind: KeyEnter}},
		{km.Tab, KeyEvent{Kind: KeyTab}},
		{km.ShiftTab, KeyEvent{Kind: KeyTab, Shift: true}},
		{km.MarkToggle, KeyEvent{Kind: KeyMarkToggle}},
		{km.SelectAll, KeyEvent{Kind: KeySelectAll}},
		{km.Undo, KeyEvent{Kind: KeyUndo}},
		{km.Redo, KeyEvent{Kind: KeyRedo}},
		{km.Copy, KeyEvent{Kind: KeyRune, Rune: 'c', Ctrl: true}},
		{km.Cut, KeyEvent{Kind: KeyRune, Rune: 'x', Ctrl: true}},
		{km.Paste, KeyEvent{Kind: KeyRune, Rune: 'v', Ctrl: true}},
	}
	for _, kb := range bound {
		if key.Matches(msg, kb.b) {
			return kb.ev, true
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return KeyEvent{Kind: KeyRune, Rune: ' ', Alt: msg.Alt}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return KeyEvent{Kind: KeyRune, Rune: msg.Runes[0], Alt: msg.Alt}, true
		}
	}
	return KeyEvent{}, false
}
