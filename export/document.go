// Package export turns palettes and schemes into downloadable JSON documents.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/scheme"
	"github.com/huewheel/huewheel/util"
	"github.com/samber/lo"
)

const (
	PaletteFilename = "color-wheel-palette.json"
	schemeSuffix    = "-scheme.json"

	// TimeLayout is ISO-8601 with milliseconds, always in UTC.
	TimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

var ErrEmptyPalette = errors.New("no palette generated yet")

// Document is anything that can be written as a JSON file.
type Document interface {
	Filename() string
}

// Color is one palette entry in its exported form.
type Color struct {
	Name string `json:"name" jsonschema:"description=Approximate human readable name."`
	Hex  string `json:"hex" jsonschema:"description=Lowercase #rrggbb code.,pattern=^#[0-9a-f]{6}$"`
	RGB  string `json:"rgb" jsonschema:"description=CSS rgb() notation."`
	HSL  string `json:"hsl" jsonschema:"description=CSS hsl() notation with rounded parts."`
}

// Palette is the exported form of a generated palette.
type Palette struct {
	ID          string  `json:"id" jsonschema:"description=Unique identifier of this export."`
	Rule        string  `json:"rule,omitempty" jsonschema:"description=Harmony rule the palette was built with. Empty for random palettes."`
	Colors      []Color `json:"colors"`
	BaseHue     float64 `json:"baseHue" jsonschema:"description=Base hue in degrees.,minimum=0,exclusiveMaximum=360"`
	GeneratedAt string  `json:"generatedAt" jsonschema:"description=Generation time in ISO-8601 UTC."`
}

func (Palette) Filename() string {
	return PaletteFilename
}

// Scheme is the exported form of a curated scheme.
type Scheme struct {
	Name         string   `json:"name"`
	Colors       []string `json:"colors"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	DownloadedAt string   `json:"downloadedAt" jsonschema:"description=Download time in ISO-8601 UTC."`
}

func (s Scheme) Filename() string {
	return SchemeFilename(s.Name)
}

// SchemeFilename lowercases name and hyphenates whitespace runs.
func SchemeFilename(name string) string {
	return util.Slug(name) + schemeSuffix
}

// Timestamp formats t the way exported documents carry it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// NewColor converts a palette color.
func NewColor(c colorspace.PaletteColor) Color {
	return Color{
		Name: c.Name,
		Hex:  c.Hex.String(),
		RGB:  c.RGB.CSS(),
		HSL:  c.HSL.CSS(),
	}
}

// NewPalette builds the document of a palette. rule may be empty.
func NewPalette(colors []colorspace.PaletteColor, baseHue float64, rule string, now time.Time) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}

	return Palette{
		ID:          uuid.NewString(),
		Rule:        rule,
		Colors:      lo.Map(colors, func(c colorspace.PaletteColor, _ int) Color { return NewColor(c) }),
		BaseHue:     baseHue,
		GeneratedAt: Timestamp(now),
	}, nil
}

// NewScheme builds the document of a curated scheme.
func NewScheme(s scheme.Scheme, now time.Time) Scheme {
	return Scheme{
		Name:         s.Name,
		Colors:       append([]string(nil), s.Colors...),
		Description:  s.Description,
		Category:     s.Category,
		DownloadedAt: Timestamp(now),
	}
}

// Marshal pretty-prints doc with two-space indentation.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", doc.Filename(), err)
	}

	return data, nil
}
