package editor

import (
	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/glyph"
)

// Caret movement. Each step reports whether the caret could move; a false
// return at a buffer edge lets the dispatcher hand focus on.

func (t *TextBox) left() bool {
	c := t.caret
	switch {
	case c.Col > 0:
		t.moveCaret(buffer.Pos{Row: c.Row, Col: c.Col - 1})
	case t.multiLine && t.caretWarp && c.Row > 0:
		t.moveCaret(buffer.Pos{Row: c.Row - 1, Col: t.lines.LineLen(c.Row - 1)})
	default:
		return false
	}
	return true
}

func (t *TextBox) right() bool {
	c := t.caret
	switch {
	case c.Col < t.lines.LineLen(c.Row):
		t.moveCaret(buffer.Pos{Row: c.Row, Col: c.Col + 1})
	case t.multiLine && t.caretWarp && c.Row < t.lines.Len()-1:
		t.moveCaret(buffer.Pos{Row: c.Row + 1, Col: 0})
	default:
		return false
	}
	return true
}

func (t *TextBox) up() bool {
	if t.caret.Row == 0 {
		return false
	}
	t.jumpToLine(t.caret.Row - 1)
	return true
}

func (t *TextBox) down() bool {
	if t.caret.Row >= t.lines.Len()-1 {
		return false
	}
	t.jumpToLine(t.caret.Row + 1)
	return true
}

func (t *TextBox) pageUp() {
	t.jumpToLine(max(t.caret.Row-t.pageSize, 0))
}

func (t *TextBox) pageDown() {
	t.jumpToLine(min(t.caret.Row+t.pageSize, t.lines.Len()-1))
}

func (t *TextBox) home() {
	t.moveCaret(buffer.Pos{Row: t.caret.Row, Col: 0})
}

func (t *TextBox) end() {
	t.moveCaret(buffer.Pos{Row: t.caret.Row, Col: t.lines.LineLen(t.caret.Row)})
}

func (t *TextBox) wordLeft() {
	line := []rune(t.line(t.caret.Row))
	t.moveCaret(buffer.Pos{Row: t.caret.Row, Col: prevWordBoundary(line, t.caret.Col)})
}

func (t *TextBox) wordRight() {
	line := []rune(t.line(t.caret.Row))
	t.moveCaret(buffer.Pos{Row: t.caret.Row, Col: nextWordBoundary(line, t.caret.Col)})
}

// jumpToLine moves the caret to row, keeping it at the sticky display
// column. The first vertical move of a run records the column; a narrower
// destination clamps to its end without forgetting it.
func (t *TextBox) jumpToLine(row int) {
	t.preserveWantCol = true
	if t.wantCol < 0 {
		t.wantCol = glyph.ColumnIndex(t.line(t.caret.Row), t.caret.Col)
	}
	dest := t.line(row)
	col := glyph.Len(dest)
	if t.wantCol <= glyph.Width(dest) {
		col = glyph.CharIndex(dest, t.wantCol)
	}
	t.moveCaret(buffer.Pos{Row: row, Col: col})
}

// Word boundaries: skip whitespace, then skip non-whitespace. Line ends are
// hard boundaries.
func prevWordBoundary(line []rune, col int) int {
	i := min(max(col, 0), len(line))
	for i > 0 && glyph.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !glyph.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := min(max(col, 0), len(line))
	for i < len(line) && glyph.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !glyph.IsSpace(line[i]) {
		i++
	}
	return i
}
