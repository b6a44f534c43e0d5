package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component that renders and edits a TextBox.
//
// The TextBox and Viewport are shared by every copy of the Model.
type Model struct {
	cfg Config
	tb  *TextBox
	vp  *Viewport

	focused bool
	width   int
	height  int

	viewport viewport.Model
	layout   Layout
}

// New builds a focused Model. A zero Style or KeyMap selects the defaults.
func New(cfg Config) (Model, error) {
	tb, err := NewTextBox(cfg)
	if err != nil {
		return Model{}, err
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Fill == 0 {
		cfg.Fill = ' '
	}

	m := Model{
		cfg:      cfg,
		tb:       tb,
		vp:       &Viewport{HideScrollbars: cfg.HideScrollbars},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	return m, nil
}

// TextBox returns the edited text box.
func (m Model) TextBox() *TextBox { return m.tb }

// Viewport returns the view origin state.
func (m Model) Viewport() *Viewport { return m.vp }

// Layout returns the plan of the last rendered frame.
func (m Model) Layout() Layout { return m.layout }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.rebuildContent()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.rebuildContent()
		return m, cmd
	case ChangeMsg:
		if msg.Source == m.tb && m.cfg.OnChange != nil {
			m.cfg.OnChange(msg.Event)
		}
		return m, nil
	default:
		// The host may have changed the text box directly.
		m.rebuildContent()
		return m, changeCmd(m.tb)
	}
}

// View renders the current state. Content changed outside Update is
// picked up here as well.
func (m Model) View() string {
	m.rebuildContent()
	return m.compose()
}

func (m *Model) rebuildContent() {
	m.layout = m.vp.Plan(m.tb, m.width, m.height)
	m.viewport.Width = m.layout.TextWidth
	m.viewport.Height = m.layout.TextHeight
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(m.layout.Origin.Row)
}
