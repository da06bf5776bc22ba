package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Report header and status styles
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle    = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
)

// Rule listing styles
var (
	IndexStyle       = lipgloss.NewStyle().Foreground(IndexColor).Bold(true)
	DescriptionStyle = lipgloss.NewStyle().Foreground(HeadingColor)

	// LabelStyle pads "Device:", "From:" and "To:" to one column.
	LabelStyle = lipgloss.NewStyle().Foreground(MutedColor).Width(8)

	DeviceStyle = lipgloss.NewStyle().Foreground(DeviceColor)
	FromStyle   = lipgloss.NewStyle().Foreground(FromColor).Bold(true)
	ToStyle     = lipgloss.NewStyle().Foreground(ToColor).Bold(true)
)

// Indent pads s by level steps of two spaces.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
