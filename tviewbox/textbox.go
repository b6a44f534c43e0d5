// Package tviewbox hosts an editor.TextBox inside a tview application.
package tviewbox

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/iw2rmb/textbox/editor"
)

// TextBox is a tview primitive that edits an editor.TextBox.
type TextBox struct {
	*tview.Box

	tb     *editor.TextBox
	vp     editor.Viewport
	styles Styles
	layout editor.Layout

	queue    func(func())
	changed  func(editor.ChangeEvent)
	navigate func(editor.Result)
}

// New builds a primitive around a new text box.
func New(cfg editor.Config) (*TextBox, error) {
	tb, err := editor.NewTextBox(cfg)
	if err != nil {
		return nil, err
	}
	return &TextBox{
		Box:    tview.NewBox(),
		tb:     tb,
		vp:     editor.Viewport{HideScrollbars: cfg.HideScrollbars},
		styles: DefaultStyles(),
	}, nil
}

// TextBox returns the edited text box.
func (b *TextBox) TextBox() *editor.TextBox { return b.tb }

// Viewport returns the view origin state.
func (b *TextBox) Viewport() *editor.Viewport { return &b.vp }

// Layout returns the plan of the last draw.
func (b *TextBox) Layout() editor.Layout { return b.layout }

func (b *TextBox) SetStyles(st Styles) *TextBox {
	b.styles = st
	return b
}

// SetChangedFunc sets the handler called after the content changed.
func (b *TextBox) SetChangedFunc(fn func(editor.ChangeEvent)) *TextBox {
	b.changed = fn
	return b
}

// SetNavigateFunc sets the handler called when a key asks to move focus
// to a neighbouring primitive.
func (b *TextBox) SetNavigateFunc(fn func(editor.Result)) *TextBox {
	b.navigate = fn
	return b
}

// SetQueueFunc sets how notifications reach the UI loop. Without one they
// run right after the key handler returns. Applications usually pass a
// function that calls QueueUpdateDraw from a new goroutine.
func (b *TextBox) SetQueueFunc(fn func(func())) *TextBox {
	b.queue = fn
	return b
}

func (b *TextBox) Draw(screen tcell.Screen) {
	b.Box.DrawForSubclass(screen, b)
	x, y, w, h := b.GetInnerRect()
	b.layout = Draw(screen, x, y, w, h, b.tb, &b.vp, b.styles, b.HasFocus())
}

func (b *TextBox) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		ev, ok := KeyEventFromTcell(event)
		if !ok {
			return
		}
		b.deliver(b.tb.HandleKey(ev))
	})
}

func (b *TextBox) PasteHandler() func(text string, setFocus func(p tview.Primitive)) {
	return b.WrapPasteHandler(func(text string, setFocus func(p tview.Primitive)) {
		if err := b.tb.Paste(text); err != nil {
			b.tb.Logger().Error("paste failed", "err", err)
		}
		b.deliver(editor.Handled)
	})
}

// deliver hands pending notifications to the UI loop.
func (b *TextBox) deliver(res editor.Result) {
	var notify []func()
	if ev, ok := b.tb.TakeChange(); ok && b.changed != nil {
		fn := b.changed
		notify = append(notify, func() { fn(ev) })
	}
	if res.MovesFocus() && b.navigate != nil {
		fn := b.navigate
		notify = append(notify, func() { fn(res) })
	}
	for _, f := range notify {
		if b.queue != nil {
			b.queue(f)
		} else {
			f()
		}
	}
}
