package editor

import (
	"strings"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/glyph"
)

// splitAt cuts s before the character at col.
func splitAt(s string, col int) (string, string) {
	r := []rune(s)
	if col < 0 {
		col = 0
	}
	if col > len(r) {
		col = len(r)
	}
	return string(r[:col]), string(r[col:])
}

// cut returns s without the characters in [from, to).
func cut(s string, from, to int) string {
	pre, rest := splitAt(s, from)
	_, post := splitAt(rest, to-from)
	return pre + post
}

func (t *TextBox) insertRune(r rune) {
	if t.sel.Active {
		t.deleteSelection()
		t.dataChanged()
	}
	line := t.line(t.caret.Row)
	if t.maxLineLength > 0 && glyph.Len(line)+1 > t.maxLineLength {
		return
	}
	pre, post := splitAt(line, t.caret.Col)
	t.must(t.lines.SetLine(t.caret.Row, pre+string(r)+post))
	t.caret.Col++
	t.dataChanged()
}

func (t *TextBox) backspace() {
	if t.sel.Active {
		t.deleteSelection()
		t.dataChanged()
		return
	}
	row, col := t.caret.Row, t.caret.Col
	line := t.line(row)
	switch {
	case col > 0:
		t.must(t.lines.SetLine(row, cut(line, col-1, col)))
		t.caret.Col--
	case t.multiLine && row > 0:
		prev := t.line(row - 1)
		t.must(t.lines.RemoveLines(row, 1))
		t.must(t.lines.SetLine(row-1, prev+line))
		t.caret = buffer.Pos{Row: row - 1, Col: glyph.Len(prev)}
	default:
		return
	}
	t.dataChanged()
}

func (t *TextBox) deleteForward() {
	if t.sel.Active {
		t.deleteSelection()
		t.dataChanged()
		return
	}
	row, col := t.caret.Row, t.caret.Col
	line := t.line(row)
	switch {
	case col < glyph.Len(line):
		t.must(t.lines.SetLine(row, cut(line, col, col+1)))
	case t.multiLine && row < t.lines.Len()-1:
		next := t.line(row + 1)
		t.must(t.lines.SetLine(row, line+next))
		t.must(t.lines.RemoveLines(row+1, 1))
	default:
		return
	}
	t.dataChanged()
}

// enter splits the line at the caret. In single-line mode it leaves the
// content alone and yields the configured result.
func (t *TextBox) enter() Result {
	if !t.multiLine {
		if t.onSingleLineEnter != nil {
			return t.onSingleLineEnter()
		}
		return MoveFocusNext
	}
	if t.sel.Active {
		t.deleteSelection()
	}
	row := t.caret.Row
	pre, post := splitAt(t.line(row), t.caret.Col)
	t.must(t.lines.SetLine(row, pre))
	t.must(t.lines.InsertLine(row+1, post))
	t.caret = buffer.Pos{Row: row + 1, Col: 0}
	t.dataChanged()
	return Handled
}

// insertText splices text into the content at pos and returns the end of
// the inserted text.
func (t *TextBox) insertText(pos buffer.Pos, text string) (buffer.Pos, error) {
	pos = t.clampPos(pos)
	parts := buffer.Ingest(text, t.multiLine)
	pre, post := splitAt(t.line(pos.Row), pos.Col)

	if len(parts) == 1 {
		if err := t.lines.SetLine(pos.Row, pre+parts[0]+post); err != nil {
			return pos, err
		}
		return buffer.Pos{Row: pos.Row, Col: pos.Col + glyph.Len(parts[0])}, nil
	}

	last := len(parts) - 1
	if err := t.lines.SetLine(pos.Row, pre+parts[0]); err != nil {
		return pos, err
	}
	rest := make([]string, 0, last)
	rest = append(rest, parts[1:last]...)
	rest = append(rest, parts[last]+post)
	if err := t.lines.InsertLines(pos.Row+1, rest); err != nil {
		return pos, err
	}
	return buffer.Pos{Row: pos.Row + last, Col: glyph.Len(parts[last])}, nil
}

// deleteRange excises r. Within one line it cuts the columns; across lines
// it keeps the first line's prefix and the last line's suffix as one line.
func (t *TextBox) deleteRange(r buffer.Range) error {
	r = buffer.ClampRange(buffer.NormalizeRange(r), t.lines.Len(), t.lines.LineLen)
	if r.IsEmpty() {
		return nil
	}
	from, to := r.Start, r.End
	if from.Row == to.Row {
		return t.lines.SetLine(from.Row, cut(t.line(from.Row), from.Col, to.Col))
	}
	pre, _ := splitAt(t.line(from.Row), from.Col)
	_, post := splitAt(t.line(to.Row), to.Col)
	if err := t.lines.SetLine(from.Row, pre+post); err != nil {
		return err
	}
	return t.lines.RemoveLines(from.Row+1, to.Row-from.Row)
}

// deleteSelection removes the selected text, parks the caret at its start
// and ends the selection gesture.
func (t *TextBox) deleteSelection() {
	if !t.sel.Active {
		return
	}
	start := t.sel.Range.Start
	t.must(t.deleteRange(t.sel.Range))
	t.caret = t.clampPos(start)
	t.clearSelection()
}

// selectedText returns the selected text with lines joined by '\n'.
func (t *TextBox) selectedText() (string, bool) {
	if !t.sel.Active {
		return "", false
	}
	r := buffer.ClampRange(t.sel.Range, t.lines.Len(), t.lines.LineLen)
	from, to := r.Start, r.End
	if from.Row == to.Row {
		_, rest := splitAt(t.line(from.Row), from.Col)
		mid, _ := splitAt(rest, to.Col-from.Col)
		return mid, true
	}
	var sb strings.Builder
	_, head := splitAt(t.line(from.Row), from.Col)
	sb.WriteString(head)
	for row := from.Row + 1; row < to.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(t.line(row))
	}
	tail, _ := splitAt(t.line(to.Row), to.Col)
	sb.WriteByte('\n')
	sb.WriteString(tail)
	return sb.String(), true
}

// pasteText replaces the selection with text and moves the caret past it.
func (t *TextBox) pasteText(text string) error {
	if t.sel.Active {
		t.deleteSelection()
	}
	end, err := t.insertText(t.caret, text)
	if err != nil {
		return err
	}
	t.caret = t.clampPos(end)
	t.dataChanged()
	return nil
}

func (t *TextBox) copySelection() {
	s, ok := t.selectedText()
	if !ok || t.clipboard == nil {
		return
	}
	if err := t.clipboard.WriteText(s); err != nil {
		t.logger.Warn("clipboard write failed", "err", err)
	}
}

func (t *TextBox) cutSelection() {
	if !t.sel.Active {
		return
	}
	t.copySelection()
	if t.readOnly {
		return
	}
	t.deleteSelection()
	t.dataChanged()
}

func (t *TextBox) pasteClipboard() error {
	if t.readOnly {
		return nil
	}
	// The selection goes even when there is nothing to paste.
	if t.sel.Active {
		t.deleteSelection()
		t.dataChanged()
	}
	if t.clipboard == nil {
		return nil
	}
	s, err := t.clipboard.ReadText()
	if err != nil {
		t.logger.Warn("clipboard read failed", "err", err)
		return nil
	}
	return t.pasteText(s)
}

// must turns a broken internal invariant into a panic, which the
// dispatcher recovers and logs.
func (t *TextBox) must(err error) {
	if err != nil {
		panic(err)
	}
}
