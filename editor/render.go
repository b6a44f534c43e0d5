package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textbox/internal/glyph"
)

type cellKind int

const (
	cellFill cellKind = iota
	cellText
	cellSelected
	cellCursor
	// cellWide is the second half of a double-width glyph.
	cellWide
)

type cell struct {
	kind cellKind
	text string
}

// renderContent renders every line the viewport can show. Rows outside
// the text area stay empty; the bubbles viewport only shows the window
// starting at the origin row.
func (m *Model) renderContent() string {
	lay := m.layout
	if lay.TextWidth <= 0 || lay.TextHeight <= 0 {
		return ""
	}

	lineCount := m.tb.LineCount()
	out := make([]string, max(lineCount, lay.Origin.Row+lay.TextHeight))
	for r := 0; r < lay.TextHeight; r++ {
		row := lay.Origin.Row + r
		var runs []Run
		if row < lineCount {
			runs, _ = m.tb.VisibleRuns(row, lay.Origin.Col, lay.TextWidth)
		}
		out[row] = m.renderRow(runs, r)
	}
	return strings.Join(out, "\n")
}

// renderRow lays runs onto a row of cells, marks the caret and renders
// each stretch of equally styled cells once.
func (m *Model) renderRow(runs []Run, screenRow int) string {
	lay := m.layout
	cells := make([]cell, lay.TextWidth)
	last := -1
	for _, run := range runs {
		kind := cellText
		if run.Selected {
			kind = cellSelected
		}
		col := run.Column
		for _, r := range run.Text {
			w := glyph.RuneWidth(r)
			if w == 0 {
				// Combining marks ride on the previous cell.
				if last >= 0 {
					cells[last].text += string(r)
				}
				continue
			}
			if col < 0 || col+w > len(cells) {
				break
			}
			last = col
			cells[col] = cell{kind: kind, text: string(r)}
			for i := 1; i < w; i++ {
				cells[col+i] = cell{kind: cellWide}
			}
			col += w
		}
	}

	if m.focused && lay.CaretVisible() && lay.Caret.Row == screenRow {
		c := &cells[lay.Caret.Col]
		if c.kind == cellFill {
			c.text = " "
		}
		c.kind = cellCursor
	}

	st := m.cfg.Style
	base := st.base(m.focused, m.tb.ReadOnly())
	styles := map[cellKind]lipgloss.Style{
		cellFill:     base,
		cellText:     base,
		cellSelected: st.Selected.Inherit(base),
		cellCursor:   st.Cursor.Inherit(base),
	}
	fill := string(m.cfg.Fill)

	var (
		sb   strings.Builder
		span strings.Builder
		cur  = cellKind(-1)
	)
	flush := func() {
		if span.Len() > 0 {
			sb.WriteString(styles[cur].Render(span.String()))
			span.Reset()
		}
	}
	for _, c := range cells {
		if c.kind == cellWide {
			continue
		}
		if c.kind != cur {
			flush()
			cur = c.kind
		}
		if c.kind == cellFill {
			span.WriteString(fill)
		} else {
			span.WriteString(c.text)
		}
	}
	flush()
	return sb.String()
}

// compose joins the text area with the scrollbars.
func (m Model) compose() string {
	lay := m.layout
	if lay.TextWidth <= 0 || lay.TextHeight <= 0 {
		return ""
	}
	view := m.viewport.View()
	if lay.Vertical.Visible {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, m.renderVertical(lay.Vertical, lay.TextHeight))
	}
	if lay.Horizontal.Visible {
		bar := m.renderHorizontal(lay.Horizontal, lay.TextWidth)
		if lay.Vertical.Visible {
			bar += string(m.cfg.Fill)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, view, bar)
	}
	return view
}

func (m Model) renderVertical(sb Scrollbar, track int) string {
	off, n := sb.Thumb(track)
	rows := make([]string, track)
	for i := range rows {
		if i >= off && i < off+n {
			rows[i] = m.cfg.Style.ScrollbarThumb.Render("█")
		} else {
			rows[i] = m.cfg.Style.ScrollbarTrack.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHorizontal(sb Scrollbar, track int) string {
	off, n := sb.Thumb(track)
	var b strings.Builder
	b.WriteString(m.cfg.Style.ScrollbarTrack.Render(strings.Repeat("─", off)))
	b.WriteString(m.cfg.Style.ScrollbarThumb.Render(strings.Repeat("█", n)))
	b.WriteString(m.cfg.Style.ScrollbarTrack.Render(strings.Repeat("─", track-off-n)))
	return b.String()
}
