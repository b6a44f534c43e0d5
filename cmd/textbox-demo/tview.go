package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/iw2rmb/textbox/editor"
	"github.com/iw2rmb/textbox/tviewbox"
)

func runTview(defs []fieldDef, logger *log.Logger) error {
	app := tview.NewApplication()
	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	status := tview.NewTextView().SetText("ctrl+q quits")

	boxes := make([]*tviewbox.TextBox, 0, len(defs))
	focus := 0
	for i, d := range defs {
		title := d.title
		b, err := tviewbox.New(d.cfg)
		if err != nil {
			return fmt.Errorf("box %q: %w", title, err)
		}
		b.SetBorder(true).SetTitle(" " + title + " ").SetTitleAlign(tview.AlignLeft)
		b.SetQueueFunc(func(f func()) { go app.QueueUpdateDraw(f) }).
			SetChangedFunc(func(ev editor.ChangeEvent) {
				status.SetText(fmt.Sprintf("%s changed (v%d, caret %d:%d)", title, ev.Version, ev.Caret.Row+1, ev.Caret.Col+1))
				logger.Debug("changed", "box", title, "version", ev.Version)
			}).
			SetNavigateFunc(func(r editor.Result) {
				focus = step(focus, len(boxes), r)
				app.SetFocus(boxes[focus])
			})
		b.SetFocusFunc(func() { focus = i })
		boxes = append(boxes, b)
		layout.AddItem(b, d.height+2, 0, i == 0)
	}
	layout.AddItem(status, 1, 0, false)

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyCtrlQ {
			app.Stop()
			return nil
		}
		return ev
	})
	return app.SetRoot(layout, true).EnablePaste(true).Run()
}
