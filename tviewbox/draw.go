package tviewbox

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/textbox/editor"
)

// Styles controls how Draw paints a text box.
type Styles struct {
	Normal          tcell.Style
	Active          tcell.Style
	ReadOnly        tcell.Style
	ReadOnlyFocused tcell.Style

	Selected tcell.Style
	Cursor   tcell.Style

	ScrollbarTrack tcell.Style
	ScrollbarThumb tcell.Style

	// Fill paints cells past the end of the text.
	Fill rune
}

func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Normal:          base,
		Active:          base.Foreground(tcell.ColorWhite),
		ReadOnly:        base.Foreground(tcell.ColorGray),
		ReadOnlyFocused: base.Foreground(tcell.ColorSilver).Bold(true),
		Selected:        base.Background(tcell.ColorDarkBlue),
		Cursor:          base.Reverse(true),
		ScrollbarTrack:  base.Foreground(tcell.ColorDimGray),
		ScrollbarThumb:  base.Foreground(tcell.ColorSilver),
		Fill:            ' ',
	}
}

func (s Styles) base(focused, readOnly bool) tcell.Style {
	switch {
	case focused && readOnly:
		return s.ReadOnlyFocused
	case focused:
		return s.Active
	case readOnly:
		return s.ReadOnly
	default:
		return s.Normal
	}
}

// Draw paints tb into the given screen area and returns the layout it
// used. The caret is drawn with the Cursor style when focused.
func Draw(screen tcell.Screen, x, y, width, height int, tb *editor.TextBox, vp *editor.Viewport, st Styles, focused bool) editor.Layout {
	lay := vp.Plan(tb, width, height)
	if lay.TextWidth <= 0 || lay.TextHeight <= 0 {
		return lay
	}
	fill := st.Fill
	if fill == 0 {
		fill = ' '
	}
	base := st.base(focused, tb.ReadOnly())
	lineCount := tb.LineCount()

	for r := 0; r < lay.TextHeight; r++ {
		for c := 0; c < lay.TextWidth; c++ {
			screen.SetContent(x+c, y+r, fill, nil, base)
		}
		row := lay.Origin.Row + r
		if row >= lineCount {
			continue
		}
		runs, _ := tb.VisibleRuns(row, lay.Origin.Col, lay.TextWidth)
		last := -1
		for _, run := range runs {
			style := base
			if run.Selected {
				style = st.Selected
			}
			col := run.Column
			for _, ch := range run.Text {
				w := runewidth.RuneWidth(ch)
				if w == 0 {
					if last >= 0 {
						lead, comb, cs, _ := screen.GetContent(x+last, y+r)
						screen.SetContent(x+last, y+r, lead, append(comb, ch), cs)
					}
					continue
				}
				if col+w > lay.TextWidth {
					break
				}
				screen.SetContent(x+col, y+r, ch, nil, style)
				last = col
				col += w
			}
		}
	}

	if focused && lay.CaretVisible() {
		cx, cy := x+lay.Caret.Col, y+lay.Caret.Row
		ch, comb, _, _ := screen.GetContent(cx, cy)
		if caretPastText(tb) {
			ch, comb = ' ', nil
		}
		screen.SetContent(cx, cy, ch, comb, st.Cursor)
	}

	if lay.Vertical.Visible {
		off, n := lay.Vertical.Thumb(lay.TextHeight)
		for r := 0; r < lay.TextHeight; r++ {
			ch, style := '│', st.ScrollbarTrack
			if r >= off && r < off+n {
				ch, style = '█', st.ScrollbarThumb
			}
			screen.SetContent(x+lay.TextWidth, y+r, ch, nil, style)
		}
	}
	if lay.Horizontal.Visible {
		off, n := lay.Horizontal.Thumb(lay.TextWidth)
		for c := 0; c < lay.TextWidth; c++ {
			ch, style := '─', st.ScrollbarTrack
			if c >= off && c < off+n {
				ch, style = '█', st.ScrollbarThumb
			}
			screen.SetContent(x+c, y+lay.TextHeight, ch, nil, style)
		}
		if lay.Vertical.Visible {
			screen.SetContent(x+lay.TextWidth, y+lay.TextHeight, fill, nil, base)
		}
	}
	return lay
}

func caretPastText(tb *editor.TextBox) bool {
	p := tb.Caret()
	line, err := tb.Line(p.Row)
	return err == nil && p.Col >= len([]rune(line))
}
