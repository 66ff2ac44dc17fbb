// Package color holds the terminal colors used by the interface chrome.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI code or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiBlack  = New("8")
	HiWhite  = New("15")
	HiPurple = New("13")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
	Ink    = New("#1e1e2e")
	Paper  = New("#f5f5f5")
)

// Contrasting returns Ink for light backgrounds and Paper for dark ones.
// luminance is the HSL lightness of the background in [0,1].
func Contrasting(luminance float64) lipgloss.Color {
	if luminance > 0.55 {
		return Ink
	}

	return Paper
}
