package tui

import (
	"fmt"
	"strings"

	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/library"
	"github.com/huewheel/huewheel/scheme"
	"github.com/huewheel/huewheel/style"
)

// page is an entry of the top-level menu.
type page struct {
	title, description string
	icon               icon.Icon
	state              state
}

var pages = []page{
	{title: "Color Wheel", description: "Pick a base color and build harmonies", icon: icon.Wheel, state: wheelState},
	{title: "Color Library", description: "Browse named colors by category", icon: icon.Palette, state: libraryState},
	{title: "Color Schemes", description: "Curated palettes from popular design systems", icon: icon.Palette, state: schemesState},
}

// listItem implements list.Item over the values the lists display.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case page:
		return strings.TrimSpace(fmt.Sprintf("%s %s", icon.Get(e.icon), e.title))
	case library.Entry:
		return fmt.Sprintf("%s %s", style.Swatch(e.Hex, 2), e.Name)
	case scheme.Scheme:
		return e.Name
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case page:
		return e.description
	case library.Entry:
		return style.Faint(fmt.Sprintf("%s • rgb(%s) • %s", e.Hex, e.RGB, e.Category))
	case scheme.Scheme:
		var sb strings.Builder
		for _, hex := range e.Colors {
			sb.WriteString(style.Swatch(hex, 2))
		}

		sb.WriteString(" ")
		sb.WriteString(style.Faint(e.Description))
		return sb.String()
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case page:
		return e.title
	case library.Entry:
		return e.Name
	case scheme.Scheme:
		return e.Name
	default:
		return ""
	}
}
