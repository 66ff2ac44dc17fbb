package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/harmony"
)

// SavedPalette is a palette as the history keeps it.
type SavedPalette struct {
	Rule    string    `json:"rule,omitempty"`
	BaseHue float64   `json:"base_hue"`
	Colors  []string  `json:"colors"`
	Count   int       `json:"count"`
	SavedAt time.Time `json:"saved_at"`
}

// encode identifies a palette by its colors alone.
func (s *SavedPalette) encode() string {
	return strings.Join(s.Colors, ",")
}

// Joined is the copyable form of the colors.
func (s *SavedPalette) Joined() string {
	return strings.Join(s.Colors, ", ")
}

// Label names the rule, or says the palette was random.
func (s *SavedPalette) Label() string {
	if s.Rule == "" {
		return "random"
	}

	return s.Rule
}

func (s *SavedPalette) String() string {
	return fmt.Sprintf("%s from %.0f° : %s", s.Label(), s.BaseHue, s.Joined())
}

func newSavedPalette(palette []colorspace.PaletteColor, baseHue float64, rule string, now time.Time) *SavedPalette {
	return &SavedPalette{
		Rule:    rule,
		BaseHue: baseHue,
		Colors:  harmony.Hexes(palette),
		Count:   1,
		SavedAt: now,
	}
}
