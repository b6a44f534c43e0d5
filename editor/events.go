package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textbox/buffer"
)

// ChangeEvent describes the content after a change.
type ChangeEvent struct {
	Version uint64
	Caret   buffer.Pos

	// Simplest payload; hosts can diff if needed.
	Text string
}

// ChangeMsg carries a ChangeEvent through the Bubble Tea event loop so
// OnChange never runs inside the key handler that caused it.
type ChangeMsg struct {
	Source *TextBox
	Event  ChangeEvent
}

// FocusMsg asks the host to move focus away from Source.
type FocusMsg struct {
	Source *TextBox
	Result Result
}

func changeCmd(tb *TextBox) tea.Cmd {
	ev, ok := tb.TakeChange()
	if !ok {
		return nil
	}
	return func() tea.Msg { return ChangeMsg{Source: tb, Event: ev} }
}

func focusCmd(tb *TextBox, r Result) tea.Cmd {
	if !r.MovesFocus() {
		return nil
	}
	return func() tea.Msg { return FocusMsg{Source: tb, Result: r} }
}
