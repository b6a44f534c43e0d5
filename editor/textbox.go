package editor

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/textbox/buffer"
	"github.com/iw2rmb/textbox/internal/glyph"
)

// TextBox is the editable state of one text input: lines, caret, selection
// and sticky column. All exported methods serialize on one mutex.
type TextBox struct {
	mu sync.Mutex

	lines     *buffer.Lines
	multiLine bool

	caret  buffer.Pos
	sel    Selection
	anchor buffer.Pos
	// anchored is true while a selection gesture is in progress.
	anchored bool
	markOn   bool

	// wantCol is the sticky display column, -1 when inactive.
	wantCol         int
	preserveWantCol bool

	readOnly      bool
	caretWarp     bool
	hFocus        bool
	vFocus        bool
	maxLineLength int
	mask          rune
	pageSize      int

	clipboard         Clipboard
	logger            *log.Logger
	onSingleLineEnter func() Result

	changed bool
	version uint64
}

// NewTextBox validates cfg and builds a TextBox with the caret at the end
// of the first line.
func NewTextBox(cfg Config) (*TextBox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	multi := cfg.multiLine()
	t := &TextBox{
		lines:             buffer.NewLines(buffer.Ingest(cfg.Text, multi)...),
		multiLine:         multi,
		wantCol:           -1,
		readOnly:          cfg.ReadOnly,
		caretWarp:         cfg.CaretWarp,
		vFocus:            cfg.VerticalFocusSwitching.resolve(true),
		hFocus:            cfg.HorizontalFocusSwitching.resolve(!multi),
		maxLineLength:     cfg.MaxLineLength,
		mask:              cfg.Mask,
		pageSize:          1,
		clipboard:         cfg.Clipboard,
		logger:            cfg.Logger,
		onSingleLineEnter: cfg.OnSingleLineEnter,
	}
	if t.logger == nil {
		t.logger = log.Default()
	}

	rec := cfg.Recorder
	if rec == nil && cfg.HistoryLimit > 0 {
		rec = buffer.NewHistory(buffer.HistoryOptions{Limit: cfg.HistoryLimit})
	}
	t.lines.SetRecorder(rec)
	t.lines.SetCommitHook(t.fixCaret)

	first, _ := t.lines.Get(0)
	t.caret = buffer.Pos{Row: 0, Col: glyph.Len(first)}
	return t, nil
}

// Lines exposes the underlying line store, for listeners.
func (t *TextBox) Lines() *buffer.Lines { return t.lines }

// MultiLine reports whether Enter splits lines.
func (t *TextBox) MultiLine() bool { return t.multiLine }

// Text returns the content with lines joined by '\n'.
func (t *TextBox) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines.Text()
}

// TextOrDefault returns the content, or def when the content is empty.
func (t *TextBox) TextOrDefault(def string) string {
	if s := t.Text(); s != "" {
		return s
	}
	return def
}

// SetText replaces the content. The caret is kept where possible and the
// selection is dropped.
func (t *TextBox) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.lines.SetAll(buffer.Ingest(text, t.multiLine))
	t.clearSelection()
	t.wantCol = -1
	t.caret = t.clampPos(t.caret)
	t.commandFinished()
	t.dataChanged()
}

// Line returns the line at index.
func (t *TextBox) Line(index int) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines.Get(index)
}

// Logger returns the logger failures are reported to.
func (t *TextBox) Logger() *log.Logger { return t.logger }

// LineCount returns the number of lines; always at least 1.
func (t *TextBox) LineCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines.Len()
}

// AddLine appends line at the end. In multi-line mode embedded '\n' start
// further lines; control characters are dropped.
func (t *TextBox) AddLine(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range buffer.Ingest(line, t.multiLine) {
		_ = t.lines.PushLine(s)
	}
	t.commandFinished()
	t.dataChanged()
}

// AppendToLine appends text to the line at index. text must not contain
// '\n'.
func (t *TextBox) AppendToLine(index int, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.lines.AppendToLine(index, text); err != nil {
		return err
	}
	t.commandFinished()
	t.dataChanged()
	return nil
}

// Caret returns the caret position.
func (t *TextBox) Caret() buffer.Pos {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.caret
}

// SetCaret moves the caret, clamping row and column into the content.
func (t *TextBox) SetCaret(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wantCol = -1
	t.caret = t.clampPos(buffer.Pos{Row: row, Col: col})
}

// SetCaretColumn moves the caret within the current line.
func (t *TextBox) SetCaretColumn(col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.wantCol = -1
	t.caret = t.clampPos(buffer.Pos{Row: t.caret.Row, Col: col})
}

// InsertText inserts text at pos and returns the position right after the
// inserted text. The caret is not moved.
func (t *TextBox) InsertText(pos buffer.Pos, text string) (buffer.Pos, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	end, err := t.insertText(pos, text)
	if err != nil {
		return end, err
	}
	t.commandFinished()
	t.dataChanged()
	return end, nil
}

// DeleteRange removes the text between from and to.
func (t *TextBox) DeleteRange(from, to buffer.Pos) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.deleteRange(buffer.Range{Start: from, End: to}); err != nil {
		return err
	}
	t.caret = t.clampPos(t.caret)
	t.commandFinished()
	t.dataChanged()
	return nil
}

// Paste inserts text at the caret as typed input, replacing the selection.
// Read-only text boxes ignore it.
func (t *TextBox) Paste(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.readOnly {
		return nil
	}
	err := t.pasteText(text)
	t.wantCol = -1
	t.commandFinished()
	return err
}

// Undo reverts the last command when the attached recorder can replay.
func (t *TextBox) Undo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.undo()
}

// Redo reapplies the last undone command.
func (t *TextBox) Redo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.redo()
}

// SetRecorder attaches an undo ledger; nil detaches it.
func (t *TextBox) SetRecorder(r buffer.Recorder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines.SetRecorder(r)
}

func (t *TextBox) ReadOnly() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readOnly
}

func (t *TextBox) SetReadOnly(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readOnly = v
}

func (t *TextBox) CaretWarp() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.caretWarp
}

// SetCaretWarp lets left/right cross line ends in multi-line mode.
func (t *TextBox) SetCaretWarp(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.caretWarp = v
}

func (t *TextBox) Mask() rune {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mask
}

// SetMask sets the rune drawn instead of every character; 0 clears it.
func (t *TextBox) SetMask(mask rune) error {
	if mask != 0 && !isCellRune(mask) {
		return fmt.Errorf("mask %q: %w", mask, ErrInvalidMask)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mask = mask
	return nil
}

func (t *TextBox) SetVerticalFocusSwitching(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vFocus = v
}

func (t *TextBox) SetHorizontalFocusSwitching(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hFocus = v
}

// SetOnSingleLineEnter overrides what Enter yields in single-line mode.
func (t *TextBox) SetOnSingleLineEnter(fn func() Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSingleLineEnter = fn
}

// SetPageSize sets how many rows page-up and page-down move.
func (t *TextBox) SetPageSize(rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rows < 1 {
		rows = 1
	}
	t.pageSize = rows
}

// SetClipboard replaces the clipboard used by copy, cut and paste.
func (t *TextBox) SetClipboard(c Clipboard) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clipboard = c
}

// PreferredSize returns the size that shows all content without
// scrolling: the widest line plus a caret cell, by the line count.
func (t *TextBox) PreferredSize() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lines.LongestWidth(), t.lines.Len()
}

// TakeChange returns the pending content change, if any, and clears it.
// Hosts call it after each event and deliver the change on their UI loop.
func (t *TextBox) TakeChange() (ChangeEvent, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.changed {
		return ChangeEvent{}, false
	}
	t.changed = false
	return ChangeEvent{
		Version: t.version,
		Text:    t.lines.Text(),
		Caret:   t.caret,
	}, true
}

func (t *TextBox) dataChanged() {
	t.changed = true
	t.version++
}

func (t *TextBox) commandFinished() {
	if rec := t.lines.Recorder(); rec != nil {
		rec.CommandFinished()
	}
}

func (t *TextBox) undo() bool {
	u, ok := t.lines.Recorder().(buffer.Undoer)
	if !ok || !u.Undo() {
		return false
	}
	t.clearSelection()
	t.dataChanged()
	return true
}

func (t *TextBox) redo() bool {
	u, ok := t.lines.Recorder().(buffer.Undoer)
	if !ok || !u.Redo() {
		return false
	}
	t.clearSelection()
	t.dataChanged()
	return true
}

// line returns row's text; row must be valid.
func (t *TextBox) line(row int) string {
	s, err := t.lines.Get(row)
	if err != nil {
		panic(err)
	}
	return s
}

func (t *TextBox) clampPos(p buffer.Pos) buffer.Pos {
	return buffer.ClampPos(p, t.lines.Len(), t.lines.LineLen)
}

// fixCaret re-clamps caret, anchor and selection after the content changed
// underneath them.
func (t *TextBox) fixCaret() {
	t.caret = t.clampPos(t.caret)
	if t.anchored {
		t.anchor = t.clampPos(t.anchor)
	}
	if t.sel.Active {
		r := buffer.ClampRange(t.sel.Range, t.lines.Len(), t.lines.LineLen)
		t.sel = Selection{Range: r, Active: !r.IsEmpty()}
	}
}
