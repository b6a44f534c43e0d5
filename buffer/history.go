package buffer

// HistoryOptions configures a History.
type HistoryOptions struct {
	Limit int // default: 1000; negative disables recording
}

type command []*Piece

// History is an in-memory Recorder that groups pieces into commands.
type History struct {
	opt HistoryOptions

	pending   command
	undo      []command
	redo      []command
	replaying bool
}

func NewHistory(opt HistoryOptions) *History {
	if opt.Limit == 0 {
		opt.Limit = 1000
	}
	return &History{opt: opt}
}

func (h *History) RecordPiece(p *Piece) {
	if h.replaying || h.opt.Limit < 0 || p == nil {
		return
	}
	h.pending = append(h.pending, p)
}

func (h *History) CommandFinished() {
	if len(h.pending) == 0 {
		return
	}
	h.undo = append(h.undo, h.pending)
	if len(h.undo) > h.opt.Limit {
		h.undo = h.undo[len(h.undo)-h.opt.Limit:]
	}
	h.pending = nil
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 || len(h.pending) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 && len(h.pending) == 0 }

// Undo reverts the most recent command, pieces in reverse order, then runs
// every piece's commit hook.
func (h *History) Undo() bool {
	h.CommandFinished()
	if len(h.undo) == 0 {
		return false
	}

	i := len(h.undo) - 1
	cmd := h.undo[i]
	h.undo = h.undo[:i]

	h.replaying = true
	for j := len(cmd) - 1; j >= 0; j-- {
		cmd[j].Undo()
	}
	for _, p := range cmd {
		p.UndoCommit()
	}
	h.replaying = false

	h.redo = append(h.redo, cmd)
	return true
}

// Redo reapplies the most recently undone command in recording order.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}

	i := len(h.redo) - 1
	cmd := h.redo[i]
	h.redo = h.redo[:i]

	h.replaying = true
	for _, p := range cmd {
		p.Redo()
	}
	for _, p := range cmd {
		p.RedoCommit()
	}
	h.replaying = false

	h.undo = append(h.undo, cmd)
	return true
}
