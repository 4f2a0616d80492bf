package display

import (
	"github.com/charmbracelet/lipgloss"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var fg = lipgloss.AdaptiveColor{
	Light: "#3c3836",
	Dark:  "#ebdbb2",
}
var gray = lipgloss.Color("#928374")
var blue = lipgloss.Color("#458588")
var red = lipgloss.Color("#cc241d")

var gutterStyle = lipgloss.NewStyle().
	Foreground(gray).
	Width(4).
	Align(lipgloss.Right).
	MarginRight(1)

var valueStyle = lipgloss.NewStyle().
	Foreground(fg).
	Bold(true)

var headStyle = valueStyle.
	Foreground(blue)

var noneStyle = lipgloss.NewStyle().
	Foreground(red).
	Italic(true)
