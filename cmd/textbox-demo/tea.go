package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/textbox/editor"
)

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type teaField struct {
	title  string
	height int
	ed     editor.Model
}

// statusLine is shared by every copy of the model so OnChange can update it.
type statusLine struct{ text string }

type teaModel struct {
	fields []teaField
	focus  int
	status *statusLine
	logger *log.Logger
}

func newTeaModel(defs []fieldDef, logger *log.Logger) (teaModel, error) {
	status := &statusLine{text: "ctrl+q quits"}
	m := teaModel{status: status, logger: logger}
	for i, d := range defs {
		title := d.title
		cfg := d.cfg
		cfg.OnChange = func(ev editor.ChangeEvent) {
			status.text = fmt.Sprintf("%s changed (v%d, caret %d:%d)", title, ev.Version, ev.Caret.Row+1, ev.Caret.Col+1)
			logger.Debug("changed", "box", title, "version", ev.Version)
		}
		ed, err := editor.New(cfg)
		if err != nil {
			return teaModel{}, fmt.Errorf("box %q: %w", title, err)
		}
		if i != 0 {
			ed = ed.Blur()
		}
		m.fields = append(m.fields, teaField{title: title, height: d.height, ed: ed})
	}
	return m, nil
}

func (m teaModel) Init() tea.Cmd { return nil }

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.fields {
			m.fields[i].ed = m.fields[i].ed.SetSize(msg.Width, m.fields[i].height)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		f := &m.fields[m.focus]
		f.ed, cmd = f.ed.Update(msg)
		return m, cmd
	case editor.FocusMsg:
		next := step(m.focus, len(m.fields), msg.Result)
		m.logger.Debug("focus", "from", m.fields[m.focus].title, "to", m.fields[next].title, "result", msg.Result)
		m.fields[m.focus].ed = m.fields[m.focus].ed.Blur()
		m.focus = next
		m.fields[m.focus].ed = m.fields[m.focus].ed.Focus()
		return m, nil
	}

	// Change notifications and anything else go to every field; each one
	// ignores messages about other boxes.
	var cmds []tea.Cmd
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i].ed, cmd = m.fields[i].ed.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m teaModel) View() string {
	var sb strings.Builder
	for i, f := range m.fields {
		st := titleStyle
		if i == m.focus {
			st = activeTitleStyle
		}
		sb.WriteString(st.Render(f.title))
		sb.WriteByte('\n')
		sb.WriteString(f.ed.View())
		sb.WriteByte('\n')
	}
	sb.WriteString(statusStyle.Render(m.status.text))
	return sb.String()
}

func runTea(defs []fieldDef, logger *log.Logger) error {
	m, err := newTeaModel(defs, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
