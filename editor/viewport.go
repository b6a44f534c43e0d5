package editor

import "github.com/iw2rmb/textbox/internal/glyph"

// Cell is a position in display columns rather than characters.
type Cell struct {
	Row int
	Col int
}

// Scrollbar describes one scrollbar. Maximum and Position are in lines for
// the vertical bar and in display columns for the horizontal one.
type Scrollbar struct {
	Visible  bool
	ViewSize int
	Maximum  int
	Position int
}

// Thumb returns the offset and length of the thumb on a track of the given
// length.
func (s Scrollbar) Thumb(track int) (offset, length int) {
	if track <= 0 {
		return 0, 0
	}
	if s.Maximum <= 0 || s.ViewSize >= s.Maximum {
		return 0, track
	}
	length = max(track*s.ViewSize/s.Maximum, 1)
	span := s.Maximum - s.ViewSize
	pos := min(max(s.Position, 0), span)
	offset = (track - length) * pos / span
	return offset, length
}

// Layout is the result of planning one frame.
type Layout struct {
	// Text area size, after scrollbars took their row and column.
	TextWidth  int
	TextHeight int

	// Origin is the first visible line and display column.
	Origin Cell

	Vertical   Scrollbar
	Horizontal Scrollbar

	// Caret location relative to the text area.
	Caret Cell
}

// Viewport keeps the view origin of one text box across frames.
type Viewport struct {
	origin Cell

	// HideScrollbars keeps every row and column for text.
	HideScrollbars bool

	// OnOriginChanged runs when the origin moves. During Plan it runs with
	// the text box locked and must not call back into it.
	OnOriginChanged func(Cell)
}

// Origin returns the current view origin.
func (v *Viewport) Origin() Cell { return v.origin }

// SetOrigin moves the view origin; negative coordinates clamp to 0. The
// next Plan may move it again to keep the caret visible.
func (v *Viewport) SetOrigin(o Cell) {
	o.Row = max(o.Row, 0)
	o.Col = max(o.Col, 0)
	if o == v.origin {
		return
	}
	v.origin = o
	if v.OnOriginChanged != nil {
		v.OnOriginChanged(o)
	}
}

// Plan lays out tb in a width x height area: it decides which scrollbars
// are needed, clamps the origin to the content and scrolls the caret into
// view. It also sets the page size of tb to height.
func (v *Viewport) Plan(tb *TextBox, width, height int) Layout {
	if width <= 0 || height <= 0 {
		return Layout{}
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.pageSize = height
	lineCount := tb.lines.Len()
	longest := tb.lines.LongestWidth()

	// A vertical bar narrows the text area, which may call for a horizontal
	// bar, which shortens it and may in turn call for the vertical one.
	tw, th := width, height
	var vbar, hbar bool
	if !v.HideScrollbars && lineCount > th && tw > 1 {
		tw--
		vbar = true
	}
	if !v.HideScrollbars && longest > tw && th > 1 {
		th--
		hbar = true
		if !vbar && lineCount > th && tw > 1 {
			tw--
			vbar = true
		}
	}

	o := v.origin
	if o.Col+tw > longest {
		o.Col = max(longest-tw, 0)
	}
	if o.Row+th > lineCount {
		o.Row = max(lineCount-th, 0)
	}

	caret := tb.clampPos(tb.caret)
	line := []rune(tb.displayLine(caret.Row))
	cc := glyph.ColumnIndex(string(line), caret.Col)
	if cc < o.Col {
		o.Col = cc
	} else if cc >= o.Col+tw {
		o.Col = cc - tw + 1
	}
	if caret.Row < o.Row {
		o.Row = caret.Row
	} else if caret.Row >= o.Row+th {
		o.Row = caret.Row - th + 1
	}
	// A double-width glyph under the caret in the last column would be
	// clipped.
	if tw > 1 && cc-o.Col == tw-1 && caret.Col < len(line) && glyph.IsDoubleWidth(line[caret.Col]) {
		o.Col++
	}
	v.SetOrigin(o)

	return Layout{
		TextWidth:  tw,
		TextHeight: th,
		Origin:     v.origin,
		Vertical: Scrollbar{
			Visible:  vbar,
			ViewSize: th,
			Maximum:  lineCount,
			Position: v.origin.Row,
		},
		Horizontal: Scrollbar{
			Visible:  hbar,
			ViewSize: tw,
			Maximum:  longest - 1,
			Position: v.origin.Col,
		},
		Caret: Cell{Row: caret.Row - v.origin.Row, Col: cc - v.origin.Col},
	}
}

// CaretVisible reports whether the caret falls inside the text area.
func (l Layout) CaretVisible() bool {
	return l.Caret.Row >= 0 && l.Caret.Row < l.TextHeight && l.Caret.Col >= 0 && l.Caret.Col < l.TextWidth
}
