package editor

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls how Model renders a text box.
type Style struct {
	// Base text style by state.
	Normal          lipgloss.Style
	Active          lipgloss.Style
	ReadOnly        lipgloss.Style
	ReadOnlyFocused lipgloss.Style

	Selected lipgloss.Style
	Cursor   lipgloss.Style

	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Normal:          lipgloss.NewStyle(),
		Active:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		ReadOnly:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ReadOnlyFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Selected:        lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:          lipgloss.NewStyle().Reverse(true),
		ScrollbarTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollbarThumb:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// base picks the text style for the focus and read-only state.
func (s Style) base(focused, readOnly bool) lipgloss.Style {
	switch {
	case focused && readOnly:
		return s.ReadOnlyFocused
	case focused:
		return s.Active
	case readOnly:
		return s.ReadOnly
	default:
		return s.Normal
	}
}

// isZero reports whether s was left unset.
func (s Style) isZero() bool {
	return reflect.DeepEqual(s, Style{})
}
