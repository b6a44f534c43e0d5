package tviewbox

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/rivo/tview"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/editor"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// rows reads back the screen as text, skipping the second half of wide
// glyphs.
func rows(s tcell.Screen, w, h int) []string {
	out := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			ch, _, _, width := s.GetContent(x, y)
			sb.WriteRune(ch)
			if width == 2 {
				x++
			}
		}
		out[y] = sb.String()
	}
	return out
}

func newBox(t *testing.T, cfg editor.Config) *TextBox {
	t.Helper()
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestKeyEventFromTcell(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want editor.KeyEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), editor.KeyEvent{Kind: editor.KeyRune, Rune: 'x'}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), editor.KeyEvent{Kind: editor.KeyRune, Rune: 'x', Alt: true}, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), editor.KeyEvent{Kind: editor.KeyLeft, Shift: true}, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), editor.KeyEvent{Kind: editor.KeyWordLeft}, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt|tcell.ModShift), editor.KeyEvent{Kind: editor.KeyWordRight, Shift: true}, true},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyPageDown}, true},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyBackspace}, true},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyTab}, true},
		{tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyTab, Shift: true}, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyEnter}, true},
		{tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), editor.KeyEvent{Kind: editor.KeyMarkToggle}, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), editor.KeyEvent{Kind: editor.KeyRune, Rune: 'c', Ctrl: true}, true},
		{tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), editor.KeyEvent{Kind: editor.KeyRune, Rune: 'z', Ctrl: true}, true},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), editor.KeyEvent{}, false},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), editor.KeyEvent{}, false},
	}
	for _, tc := range cases {
		got, ok := KeyEventFromTcell(tc.ev)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("KeyEventFromTcell(%s): got (%v, %v), want (%v, %v)", tc.ev.Name(), got, ok, tc.want, tc.ok)
		}
	}
}

func TestDraw_TextFillAndScrollbar(t *testing.T) {
	s := newScreen(t, 6, 3)
	tb, _ := editor.NewTextBox(editor.Config{Text: "a\nb\nc\nd\ne"})
	tb.SetCaret(0, 0)
	var vp editor.Viewport
	st := DefaultStyles()
	st.Fill = '.'

	lay := Draw(s, 0, 0, 6, 3, tb, &vp, st, false)
	if !lay.Vertical.Visible || lay.Horizontal.Visible {
		t.Fatalf("scrollbars: got %+v", lay)
	}
	want := []string{"a....█", "b....│", "c....│"}
	if diff := cmp.Diff(want, rows(s, 6, 3)); diff != "" {
		t.Fatalf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestDraw_CursorAndSelectionStyles(t *testing.T) {
	s := newScreen(t, 5, 1)
	tb, _ := editor.NewTextBox(editor.Config{Text: "abc"})
	tb.SetSelection(buffer.Range{Start: buffer.Pos{Col: 0}, End: buffer.Pos{Col: 1}})
	var vp editor.Viewport
	st := DefaultStyles()

	Draw(s, 0, 0, 5, 1, tb, &vp, st, true)

	if _, _, style, _ := s.GetContent(0, 0); style != st.Selected {
		t.Fatalf("selected cell style: got %v, want %v", style, st.Selected)
	}
	if _, _, style, _ := s.GetContent(1, 0); style != st.Active {
		t.Fatalf("plain cell style: got %v, want %v", style, st.Active)
	}
	ch, _, style, _ := s.GetContent(3, 0)
	if ch != ' ' || style != st.Cursor {
		t.Fatalf("caret cell: got (%q, %v), want (' ', %v)", ch, style, st.Cursor)
	}
}

func TestDraw_WideGlyphs(t *testing.T) {
	s := newScreen(t, 4, 1)
	tb, _ := editor.NewTextBox(editor.Config{Text: "界a"})
	var vp editor.Viewport
	Draw(s, 0, 0, 4, 1, tb, &vp, DefaultStyles(), false)
	if got := rows(s, 4, 1)[0]; got != "界a " {
		t.Fatalf("row: got %q, want %q", got, "界a ")
	}
}

func TestDraw_CombiningMarksUseCombArgument(t *testing.T) {
	s := newScreen(t, 4, 1)
	tb, _ := editor.NewTextBox(editor.Config{Text: "abc\u0301", Mode: editor.ModeSingleLine})
	tb.SetCaret(0, 0)
	var vp editor.Viewport
	Draw(s, 0, 0, 3, 1, tb, &vp, DefaultStyles(), false)

	ch, comb, _, _ := s.GetContent(2, 0)
	if ch != 'c' || string(comb) != "\u0301" {
		t.Fatalf("cell 2: got %q%q, want %q", ch, comb, "c\u0301")
	}
	if _, comb, _, _ := s.GetContent(3, 0); len(comb) != 0 {
		t.Fatalf("mark drawn past the text area: %q", comb)
	}

	tb.SetText("e\u0301x")
	tb.SetCaret(0, 0)
	Draw(s, 0, 0, 3, 1, tb, &vp, DefaultStyles(), false)
	if got := rows(s, 3, 1)[0]; got != "ex " {
		t.Fatalf("row: got %q, want %q", got, "ex ")
	}
	if _, comb, _, _ := s.GetContent(0, 0); string(comb) != "\u0301" {
		t.Fatalf("mark should combine with e: got %q", comb)
	}
}

func TestTextBox_InputHandlerEditsAndNotifies(t *testing.T) {
	b := newBox(t, editor.Config{Text: "ab"})
	var changes []editor.ChangeEvent
	var moves []editor.Result
	b.SetChangedFunc(func(ev editor.ChangeEvent) { changes = append(changes, ev) }).
		SetNavigateFunc(func(r editor.Result) { moves = append(moves, r) })

	handle := b.InputHandler()
	noFocus := func(tview.Primitive) {}
	handle(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), noFocus)
	handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), noFocus)
	handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), noFocus)

	if got := b.TextBox().Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}
	if len(changes) != 1 || changes[0].Text != "abc" {
		t.Fatalf("changes: got %+v, want one with %q", changes, "abc")
	}
	if diff := cmp.Diff([]editor.Result{editor.MoveFocusNext}, moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestTextBox_QueueFuncDefersNotifications(t *testing.T) {
	b := newBox(t, editor.Config{Text: ""})
	var queued []func()
	var texts []string
	b.SetQueueFunc(func(f func()) { queued = append(queued, f) }).
		SetChangedFunc(func(ev editor.ChangeEvent) { texts = append(texts, ev.Text) })

	b.InputHandler()(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), func(tview.Primitive) {})
	if len(texts) != 0 || len(queued) != 1 {
		t.Fatalf("before queue runs: texts %v queued %d", texts, len(queued))
	}
	queued[0]()
	if diff := cmp.Diff([]string{"x"}, texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestTextBox_PasteHandler(t *testing.T) {
	b := newBox(t, editor.Config{Text: "ab\n"})
	b.TextBox().SetCaret(0, 1)
	b.PasteHandler()("x\ny", func(tview.Primitive) {})
	if got := b.TextBox().Text(); got != "ax\nyb\n" {
		t.Fatalf("text: got %q, want %q", got, "ax\nyb\n")
	}
}

func TestTextBox_PasteReportsToConfiguredLogger(t *testing.T) {
	lg := log.New(io.Discard)
	b := newBox(t, editor.Config{Text: "", Logger: lg})
	if b.TextBox().Logger() != lg {
		t.Fatalf("paste failures would not reach the configured logger")
	}
	b.PasteHandler()("x", func(tview.Primitive) {})
	if got := b.TextBox().Text(); got != "x" {
		t.Fatalf("text: got %q, want %q", got, "x")
	}
}

func TestTextBox_DrawUsesInnerRect(t *testing.T) {
	s := newScreen(t, 8, 3)
	b := newBox(t, editor.Config{Text: "hi"})
	b.SetBorder(true)
	b.SetRect(0, 0, 8, 3)
	b.SetStyles(Styles{Fill: '.'})
	b.Draw(s)

	if lay := b.Layout(); lay.TextWidth != 6 || lay.TextHeight != 1 {
		t.Fatalf("layout: got %dx%d, want 6x1", lay.TextWidth, lay.TextHeight)
	}
	row := rows(s, 8, 3)[1]
	if got := row[len("│") : len(row)-len("│")]; got != "hi...." {
		t.Fatalf("inner row: got %q, want %q", got, "hi....")
	}
}
