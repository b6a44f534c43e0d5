package editor

import "github.com/iw2rmb/textbox/buffer"

// Selection is a normalized range plus an active flag. An empty range is
// never active.
type Selection struct {
	Range  buffer.Range
	Active bool
}

// Selection returns the current selection.
func (t *TextBox) Selection() Selection {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sel
}

// SetSelection selects r. The range is normalized and clamped; an empty
// range clears the selection.
func (t *TextBox) SetSelection(r buffer.Range) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r = buffer.ClampRange(buffer.NormalizeRange(r), t.lines.Len(), t.lines.LineLen)
	t.sel = Selection{Range: r, Active: !r.IsEmpty()}
}

// SelectAll selects from the start of the first line to the end of the
// last one.
func (t *TextBox) SelectAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectAll()
}

func (t *TextBox) selectAll() {
	last := t.lines.Len() - 1
	r := buffer.Range{End: buffer.Pos{Row: last, Col: t.lines.LineLen(last)}}
	t.sel = Selection{Range: r, Active: !r.IsEmpty()}
}

// ClearSelection drops the selection and ends any selection gesture.
func (t *TextBox) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearSelection()
}

// SelectedText returns the selected text, or false when nothing is
// selected.
func (t *TextBox) SelectedText() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedText()
}

// MarkOn reports whether mark mode is on. In mark mode navigation extends
// the selection as if shift were held.
func (t *TextBox) MarkOn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.markOn
}

// ToggleMark flips mark mode.
func (t *TextBox) ToggleMark() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markOn = !t.markOn
}

func (t *TextBox) clearSelection() {
	t.anchored = false
	t.sel = Selection{}
}

// checkSelectionStart starts a gesture at the caret when extending, or
// ends the current one when not.
func (t *TextBox) checkSelectionStart(extend bool) {
	if extend || t.markOn {
		if !t.anchored {
			t.anchor = t.caret
			t.anchored = true
		}
		return
	}
	t.clearSelection()
}

// moveCaret sets the caret and, during a gesture, recomputes the selection
// between anchor and caret.
func (t *TextBox) moveCaret(p buffer.Pos) {
	t.caret = t.clampPos(p)
	if !t.anchored {
		return
	}
	r := buffer.NormalizeRange(buffer.Range{Start: t.anchor, End: t.caret})
	t.sel = Selection{Range: r, Active: !r.IsEmpty()}
}
