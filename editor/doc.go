// Package editor implements a line-oriented text input widget.
//
// TextBox owns the caret, the selection, the sticky column and the key
// dispatcher on top of a buffer.Lines. Viewport plans what is visible
// without drawing anything. Model hosts a TextBox as a Bubble Tea
// component and renders the plan with lipgloss.
package editor
