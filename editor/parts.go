package editor

import (
	"strings"

	"github.com/iw2rmb/textbox/internal/glyph"
)

// LinePart is a run of one line that is either entirely selected or
// entirely unselected. Offset and Length count characters.
type LinePart struct {
	Selected bool
	Text     string
	Offset   int
	Length   int
}

// Run is a LinePart cropped to the visible columns. Column is relative to
// the left edge of the text area.
type Run struct {
	Selected bool
	Text     string
	Column   int
	Width    int
}

// LineParts splits row into at most three parts: before, inside and after
// the selection. Empty parts are omitted, except that a line with no text
// yields one empty part. With a mask set, Text holds the mask
// instead of the content.
func (t *TextBox) LineParts(row int) ([]LinePart, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.lines.Get(row); err != nil {
		return nil, err
	}
	return t.lineParts(row), nil
}

// VisibleRuns returns the parts of row that fall inside the width columns
// starting at originCol. A cluster cut by either edge is left out, and a
// zero-width rune always stays with the cell drawn before it.
func (t *TextBox) VisibleRuns(row, originCol, width int) ([]Run, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.lines.Get(row); err != nil {
		return nil, err
	}
	return t.visibleRuns(row, originCol, width), nil
}

// displayLine returns row as drawn: the content, or the mask repeated for
// every character.
func (t *TextBox) displayLine(row int) string {
	s := t.line(row)
	if t.mask == 0 {
		return s
	}
	return strings.Repeat(string(t.mask), glyph.Len(s))
}

func (t *TextBox) lineParts(row int) []LinePart {
	line := []rune(t.displayLine(row))
	n := len(line)
	part := func(sel bool, from, to int) LinePart {
		return LinePart{Selected: sel, Text: string(line[from:to]), Offset: from, Length: to - from}
	}

	r := t.sel.Range
	if !t.sel.Active || row < r.Start.Row || row > r.End.Row {
		return []LinePart{part(false, 0, n)}
	}

	from, to := r.Start.Col, r.End.Col
	if r.Start.Row < row {
		from = 0
	}
	if r.End.Row > row {
		to = n
	}
	from = min(from, n)
	to = min(max(to, from), n)

	var out []LinePart
	if from > 0 {
		out = append(out, part(false, 0, from))
	}
	if to > from || n == 0 {
		out = append(out, part(true, from, to))
	}
	if to < n {
		out = append(out, part(false, to, n))
	}
	return out
}

func (t *TextBox) visibleRuns(row, originCol, width int) []Run {
	if width <= 0 {
		return nil
	}
	right := originCol + width

	var out []Run
	col := 0
	kept := false
	for _, p := range t.lineParts(row) {
		var sb strings.Builder
		start := -1
		w := 0
		glyph.EachCluster(p.Text, func(c string, cw int) {
			switch {
			case cw == 0:
				// A lone mark joins whatever was drawn just before it.
				if !kept {
					return
				}
				if start < 0 {
					out[len(out)-1].Text += c
					return
				}
				sb.WriteString(c)
			case col >= originCol && col+cw <= right:
				if start < 0 {
					start = col - originCol
				}
				sb.WriteString(c)
				w += cw
				kept = true
			default:
				kept = false
			}
			col += cw
		})
		if start >= 0 {
			out = append(out, Run{Selected: p.Selected, Text: sb.String(), Column: start, Width: w})
		}
	}
	return out
}
