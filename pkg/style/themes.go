package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Every colour adapts to light and dark terminals.
var (
	// Headings and rule descriptions.
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}

	// Rule indexes.
	IndexColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}

	// Labels, placeholders and file paths.
	MutedColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}

	// Device conditions, source keys and output events of a manipulator.
	DeviceColor = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
	FromColor   = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	ToColor     = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}
)
