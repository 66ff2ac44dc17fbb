package colorspace

// NameFunc assigns a human readable name to a color.
type NameFunc func(RGB) string

// Info describes one color in every notation. Values are created fresh by
// every computation and never mutated.
type Info struct {
	Hex  Hex
	RGB  RGB
	HSL  HSL
	Name string
}

// PaletteColor is an Info with its index inside a generated palette.
type PaletteColor struct {
	Info
	Position int
}

// NewInfo builds an Info whose hex is derived from rgb.
func NewInfo(rgb RGB, hsl HSL, name string) Info {
	return Info{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSL:  hsl,
		Name: name,
	}
}

// FromHSL renders a polar color and names the result.
func FromHSL(hsl HSL, name NameFunc) Info {
	rgb := hsl.RGB()
	return NewInfo(rgb, hsl, name(rgb))
}

// Describe parses any color notation accepted by Parse and fills in the rest.
func Describe(s string, name NameFunc) (Info, error) {
	rgb, err := Parse(s)
	if err != nil {
		return Info{}, err
	}

	return NewInfo(rgb, RGBToHSL(rgb), name(rgb)), nil
}
