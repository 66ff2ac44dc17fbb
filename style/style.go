// Package style provides a functional API for composing lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/huewheel/huewheel/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a rendering function that applies the background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Truncate constrains the output to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag encapsulates a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Swatch renders a block of width cells filled with the given hex color.
func Swatch(hex string, width int) string {
	if width < 1 {
		width = 1
	}

	return Colored("", color.New(hex)).Width(width).Render("")
}

// Chip renders label on top of the hex color, picking a readable foreground.
// lightness is the HSL lightness of hex in [0,1].
func Chip(hex string, lightness float64, label string) string {
	return Colored(color.Contrasting(lightness), color.New(hex)).Padding(0, 1).Render(label)
}
