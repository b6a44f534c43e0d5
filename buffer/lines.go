package buffer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iw2rmb/textbox/internal/glyph"
)

// Listener observes structural changes: lines added or removed.
//
// Listeners run synchronously inside the mutation that triggered them and
// must not mutate the Lines they observe.
type Listener interface {
	LinesAdded(index, count int)
	LinesDeleted(index, count int)
}

// ListenerFuncs adapts plain functions to Listener. Register it by pointer
// so it can be removed again.
type ListenerFuncs struct {
	Added   func(index, count int)
	Deleted func(index, count int)
}

func (f *ListenerFuncs) LinesAdded(index, count int) {
	if f.Added != nil {
		f.Added(index, count)
	}
}

func (f *ListenerFuncs) LinesDeleted(index, count int) {
	if f.Deleted != nil {
		f.Deleted(index, count)
	}
}

// Lines is an ordered, never-empty sequence of lines without terminators.
type Lines struct {
	lines   []string
	version uint64

	// longest is max(width(line)+1) over all lines, floor 1.
	longest      int
	longestStale bool

	listeners []Listener
	recorder  Recorder
	commit    func()
}

// NewLines returns a buffer holding lines. No pieces are recorded for the
// initial content. Lines must not contain '\n'; offending entries are split.
func NewLines(lines ...string) *Lines {
	l := &Lines{longest: 1}
	l.lines = normalizeLines(lines)
	l.longestStale = true
	return l
}

func normalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, s := range lines {
		out = append(out, SplitText(s)...)
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

// Version increments on every mutation, including undo and redo.
func (l *Lines) Version() uint64 { return l.version }

// Len returns the number of lines; it is always at least 1.
func (l *Lines) Len() int { return len(l.lines) }

// Get returns the line at row.
func (l *Lines) Get(row int) (string, error) {
	if row < 0 || row >= len(l.lines) {
		return "", fmt.Errorf("get row %d of %d: %w", row, len(l.lines), ErrOutOfRange)
	}
	return l.lines[row], nil
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (l *Lines) LineLen(row int) int {
	if row < 0 || row >= len(l.lines) {
		return 0
	}
	return glyph.Len(l.lines[row])
}

// Lines returns a copy of all lines.
func (l *Lines) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Text joins all lines with '\n'.
func (l *Lines) Text() string {
	return strings.Join(l.lines, "\n")
}

// LongestWidth returns the widest line in display columns plus one cell
// for the caret. It is never less than 1.
func (l *Lines) LongestWidth() int {
	if l.longestStale {
		l.longest = 1
		for _, s := range l.lines {
			l.grow(s)
		}
		l.longestStale = false
	}
	return l.longest
}

func (l *Lines) grow(s string) {
	if l.longestStale {
		return
	}
	if w := glyph.Width(s) + 1; w > l.longest {
		l.longest = w
	}
}

// AddListener registers a structural change listener. Only listeners of a
// comparable type, such as pointers, can be removed again.
func (l *Lines) AddListener(x Listener) {
	if x == nil {
		return
	}
	l.listeners = append(l.listeners, x)
}

// RemoveListener unregisters the first listener equal to x. A listener
// whose type cannot be compared, such as a slice or a struct holding
// funcs, matches nothing.
func (l *Lines) RemoveListener(x Listener) {
	typ := reflect.TypeOf(x)
	if typ == nil || !typ.Comparable() {
		return
	}
	for i, cur := range l.listeners {
		if reflect.TypeOf(cur) == typ && cur == x {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return
		}
	}
}

// SetRecorder attaches the undo ledger. A nil recorder disables recording.
func (l *Lines) SetRecorder(r Recorder) { l.recorder = r }

// Recorder returns the attached undo ledger, if any.
func (l *Lines) Recorder() Recorder { return l.recorder }

// SetCommitHook installs fn to run after a recorded piece is undone or
// redone.
func (l *Lines) SetCommitHook(fn func()) { l.commit = fn }

// SetAll replaces the entire content. nil or empty input leaves one empty
// line.
func (l *Lines) SetAll(lines []string) error {
	for i, s := range lines {
		if strings.ContainsRune(s, '\n') {
			return fmt.Errorf("set all, line %d: %w", i, ErrLineTerminator)
		}
	}
	next := append([]string(nil), lines...)
	if len(next) == 0 {
		next = []string{""}
	}
	l.apply(ReplaceAllEdit{Prev: l.Lines(), Next: next})
	return nil
}

// Clear leaves a single empty line.
func (l *Lines) Clear() {
	_ = l.SetAll(nil)
}

// SetLine replaces the text of row.
func (l *Lines) SetLine(row int, text string) error {
	if row < 0 || row >= len(l.lines) {
		return fmt.Errorf("set row %d of %d: %w", row, len(l.lines), ErrOutOfRange)
	}
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("set row %d: %w", row, ErrLineTerminator)
	}
	prev := l.lines[row]
	if prev == text {
		return nil
	}
	l.apply(SetLineEdit{Row: row, Prev: prev, Next: text})
	return nil
}

// AppendToLine appends text to the end of row.
func (l *Lines) AppendToLine(row int, text string) error {
	if row < 0 || row >= len(l.lines) {
		return fmt.Errorf("append to row %d of %d: %w", row, len(l.lines), ErrOutOfRange)
	}
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("append to row %d: %w", row, ErrLineTerminator)
	}
	if text == "" {
		return nil
	}
	prev := l.lines[row]
	l.apply(SetLineEdit{Row: row, Prev: prev, Next: prev + text})
	return nil
}

// InsertLine inserts text as a new line before row. row may equal Len().
func (l *Lines) InsertLine(row int, text string) error {
	return l.InsertLines(row, []string{text})
}

// InsertLines inserts texts as new lines before row. row may equal Len().
func (l *Lines) InsertLines(row int, texts []string) error {
	if row < 0 || row > len(l.lines) {
		return fmt.Errorf("insert at row %d of %d: %w", row, len(l.lines), ErrOutOfRange)
	}
	for i, s := range texts {
		if strings.ContainsRune(s, '\n') {
			return fmt.Errorf("insert at row %d, line %d: %w", row, i, ErrLineTerminator)
		}
	}
	if len(texts) == 0 {
		return nil
	}
	l.apply(InsertLinesEdit{Row: row, Texts: append([]string(nil), texts...)})
	return nil
}

// PushLine appends text as a new last line.
func (l *Lines) PushLine(text string) error {
	return l.InsertLine(len(l.lines), text)
}

// RemoveLines removes count lines starting at row.
func (l *Lines) RemoveLines(row, count int) error {
	if count <= 0 {
		return nil
	}
	if row < 0 || row+count > len(l.lines) {
		return fmt.Errorf("remove rows [%d,%d) of %d: %w", row, row+count, len(l.lines), ErrOutOfRange)
	}
	if count == len(l.lines) {
		return fmt.Errorf("remove rows [%d,%d): %w", row, row+count, ErrEmpty)
	}
	removed := append([]string(nil), l.lines[row:row+count]...)
	l.apply(RemoveLinesEdit{Row: row, Removed: removed})
	return nil
}

func (l *Lines) apply(e Edit) {
	e.redo(l)
	if l.recorder != nil {
		l.recorder.RecordPiece(&Piece{lines: l, edit: e})
	}
}

func (l *Lines) runCommit() {
	if l.commit != nil {
		l.commit()
	}
}

func (l *Lines) setRow(row int, text string) {
	l.lines[row] = text
	l.longestStale = true
	l.version++
}

func (l *Lines) insertRows(row int, texts []string) {
	next := make([]string, 0, len(l.lines)+len(texts))
	next = append(next, l.lines[:row]...)
	next = append(next, texts...)
	next = append(next, l.lines[row:]...)
	l.lines = next
	for _, s := range texts {
		l.grow(s)
	}
	l.version++
	l.notifyAdded(row, len(texts))
}

func (l *Lines) removeRows(row, count int) {
	l.lines = append(l.lines[:row:row], l.lines[row+count:]...)
	l.longestStale = true
	l.version++
	l.notifyDeleted(row, count)
}

func (l *Lines) replaceAll(lines []string) {
	prevLen := len(l.lines)
	l.lines = append([]string(nil), lines...)
	l.longest = 1
	l.longestStale = true
	l.version++
	l.notifyDeleted(0, prevLen)
	l.notifyAdded(0, len(l.lines))
}

func (l *Lines) notifyAdded(index, count int) {
	for _, x := range l.listeners {
		x.LinesAdded(index, count)
	}
}

func (l *Lines) notifyDeleted(index, count int) {
	for _, x := range l.listeners {
		x.LinesDeleted(index, count)
	}
}
