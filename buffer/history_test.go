package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newRecorded(lines ...string) (*Lines, *History) {
	l := NewLines(lines...)
	h := NewHistory(HistoryOptions{})
	l.SetRecorder(h)
	return l, h
}

func TestHistory_UndoRedo_EmptyStacks(t *testing.T) {
	_, h := newRecorded("hi")
	if h.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if ok := h.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if ok := h.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}
}

func TestHistory_EveryMutationReversesExactly(t *testing.T) {
	l, h := newRecorded("abc", "def", "ghi")
	before := l.Lines()

	steps := []func(){
		func() { _ = l.SetLine(0, "ABC") },
		func() { _ = l.InsertLine(1, "new") },
		func() { _ = l.InsertLines(4, []string{"x", "y"}) },
		func() { _ = l.AppendToLine(2, "!") },
		func() { _ = l.RemoveLines(1, 2) },
		func() { _ = l.PushLine("tail") },
		func() { _ = l.SetAll([]string{"replaced"}) },
		func() { l.Clear() },
	}
	for _, step := range steps {
		step()
		h.CommandFinished()
	}
	after := l.Lines()

	for range steps {
		if ok := h.Undo(); !ok {
			t.Fatalf("expected Undo=true")
		}
	}
	if diff := cmp.Diff(before, l.Lines()); diff != "" {
		t.Fatalf("content after undo mismatch (-want +got):\n%s", diff)
	}

	for range steps {
		if ok := h.Redo(); !ok {
			t.Fatalf("expected Redo=true")
		}
	}
	if diff := cmp.Diff(after, l.Lines()); diff != "" {
		t.Fatalf("content after redo mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_GroupsPiecesUntilCommandFinished(t *testing.T) {
	l, h := newRecorded("ab")
	_ = l.SetLine(0, "a")
	_ = l.PushLine("b")
	h.CommandFinished()

	if ok := h.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := l.Text(), "ab"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if h.CanUndo() {
		t.Fatalf("expected one command only")
	}
}

func TestHistory_CommitHookRunsAfterReplay(t *testing.T) {
	l, h := newRecorded("a")
	var seen []int
	l.SetCommitHook(func() { seen = append(seen, l.Len()) })

	_ = l.PushLine("b")
	_ = l.PushLine("c")
	h.CommandFinished()

	h.Undo()
	if diff := cmp.Diff([]int{1, 1}, seen); diff != "" {
		t.Fatalf("hook calls after undo mismatch (-want +got):\n%s", diff)
	}
	seen = nil
	h.Redo()
	if diff := cmp.Diff([]int{3, 3}, seen); diff != "" {
		t.Fatalf("hook calls after redo mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_Limit_BoundsUndoDepth(t *testing.T) {
	l := NewLines("")
	h := NewHistory(HistoryOptions{Limit: 2})
	l.SetRecorder(h)
	for _, s := range []string{"a", "ab", "abc"} {
		_ = l.SetLine(0, s)
		h.CommandFinished()
	}

	if ok := h.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if ok := h.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := l.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if ok := h.Undo(); ok {
		t.Fatalf("expected Undo=false (history limit reached)")
	}
}

func TestHistory_NewCommandClearsRedo(t *testing.T) {
	l, h := newRecorded("")
	_ = l.SetLine(0, "a")
	h.CommandFinished()
	h.Undo()
	if !h.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	_ = l.SetLine(0, "X")
	h.CommandFinished()
	if h.CanRedo() {
		t.Fatalf("expected CanRedo=false after new edit")
	}
}

func TestHistory_ReplayDoesNotRecord(t *testing.T) {
	l, h := newRecorded("a")
	_ = l.PushLine("b")
	h.CommandFinished()

	h.Undo()
	h.Redo()
	h.Undo()
	if h.CanUndo() {
		t.Fatalf("expected replay to leave no extra commands")
	}
	if got, want := l.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}
