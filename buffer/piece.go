package buffer

// Edit is one reversible line mutation. The concrete variants are
// SetLineEdit, InsertLinesEdit, RemoveLinesEdit and ReplaceAllEdit.
type Edit interface {
	redo(l *Lines)
	undo(l *Lines)
}

// SetLineEdit replaces the text of one row.
type SetLineEdit struct {
	Row  int
	Prev string
	Next string
}

func (e SetLineEdit) redo(l *Lines) { l.setRow(e.Row, e.Next) }
func (e SetLineEdit) undo(l *Lines) { l.setRow(e.Row, e.Prev) }

// InsertLinesEdit inserts Texts before Row.
type InsertLinesEdit struct {
	Row   int
	Texts []string
}

func (e InsertLinesEdit) redo(l *Lines) { l.insertRows(e.Row, e.Texts) }
func (e InsertLinesEdit) undo(l *Lines) { l.removeRows(e.Row, len(e.Texts)) }

// RemoveLinesEdit removes the rows starting at Row; Removed holds their text.
type RemoveLinesEdit struct {
	Row     int
	Removed []string
}

func (e RemoveLinesEdit) redo(l *Lines) { l.removeRows(e.Row, len(e.Removed)) }
func (e RemoveLinesEdit) undo(l *Lines) { l.insertRows(e.Row, e.Removed) }

// ReplaceAllEdit swaps the whole content.
type ReplaceAllEdit struct {
	Prev []string
	Next []string
}

func (e ReplaceAllEdit) redo(l *Lines) { l.replaceAll(e.Next) }
func (e ReplaceAllEdit) undo(l *Lines) { l.replaceAll(e.Prev) }

// Piece is a recorded Edit bound to the Lines it was applied to.
type Piece struct {
	lines *Lines
	edit  Edit
}

// Edit returns the recorded mutation.
func (p *Piece) Edit() Edit { return p.edit }

// Undo reverts the mutation. Nothing is recorded.
func (p *Piece) Undo() { p.edit.undo(p.lines) }

// Redo reapplies the mutation. Nothing is recorded.
func (p *Piece) Redo() { p.edit.redo(p.lines) }

// UndoCommit runs the post-apply hook after an undo pass.
func (p *Piece) UndoCommit() { p.lines.runCommit() }

// RedoCommit runs the post-apply hook after a redo pass.
func (p *Piece) RedoCommit() { p.lines.runCommit() }

// Recorder is the undo ledger a Lines reports to.
//
// RecordPiece is called once per mutation. CommandFinished marks the end of
// one user action; pieces recorded since the previous call form one
// undoable unit.
type Recorder interface {
	RecordPiece(p *Piece)
	CommandFinished()
}

// Undoer is implemented by ledgers that can replay their commands.
type Undoer interface {
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
}
