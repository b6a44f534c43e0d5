package tviewbox

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/textbox/editor"
)

var namedKeys = map[tcell.Key]editor.KeyKind{
	tcell.KeyLeft:       editor.KeyLeft,
	tcell.KeyRight:      editor.KeyRight,
	tcell.KeyUp:         editor.KeyUp,
	tcell.KeyDown:       editor.KeyDown,
	tcell.KeyHome:       editor.KeyHome,
	tcell.KeyEnd:        editor.KeyEnd,
	tcell.KeyPgUp:       editor.KeyPageUp,
	tcell.KeyPgDn:       editor.KeyPageDown,
	tcell.KeyBackspace:  editor.KeyBackspace,
	tcell.KeyBackspace2: editor.KeyBackspace,
	tcell.KeyDelete:     editor.KeyDelete,
	tcell.KeyEnter:      editor.KeyEnter,
	tcell.KeyTab:        editor.KeyTab,
	tcell.KeyF3:         editor.KeyMarkToggle,
}

// KeyEventFromTcell translates a tcell key event. Keys a text box has no
// use for yield false.
func KeyEventFromTcell(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	mods := ev.Modifiers()
	shift := mods&tcell.ModShift != 0
	ctrl := mods&tcell.ModCtrl != 0
	alt := mods&tcell.ModAlt != 0

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return editor.KeyEvent{Kind: editor.KeyRune, Rune: ev.Rune(), Ctrl: ctrl, Alt: alt}, true
	case k == tcell.KeyBacktab:
		return editor.KeyEvent{Kind: editor.KeyTab, Shift: true}, true
	case (k == tcell.KeyLeft || k == tcell.KeyRight) && (ctrl || alt):
		kind := editor.KeyWordLeft
		if k == tcell.KeyRight {
			kind = editor.KeyWordRight
		}
		return editor.KeyEvent{Kind: kind, Shift: shift}, true
	}
	if kind, ok := namedKeys[k]; ok {
		return editor.KeyEvent{Kind: kind, Shift: shift}, true
	}
	// Backspace, Tab and Enter share codes with ctrl+h, ctrl+i and ctrl+m
	// and were handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return editor.KeyEvent{Kind: editor.KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}, true
	}
	return editor.KeyEvent{}, false
}
