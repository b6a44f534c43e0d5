package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if err := m.tb.Paste(string(msg.Runes)); err != nil {
			m.tb.logger.Error("paste failed", "err", err)
		}
		return m, changeCmd(m.tb)
	}

	ev, ok := m.cfg.KeyMap.Translate(msg)
	if !ok {
		// Several runes in one message come from IMEs; type them one by one.
		if msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				m.tb.HandleKey(KeyEvent{Kind: KeyRune, Rune: r})
			}
		}
		return m, changeCmd(m.tb)
	}

	res := m.tb.HandleKey(ev)
	return m, tea.Batch(changeCmd(m.tb), focusCmd(m.tb, res))
}
