// Package library is the catalog of named colors browsable by category.
package library

import (
	"image/color"
	"sort"
	"strings"
	"sync"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/image/colornames"
)

// CSS is the category generated from the CSS named colors.
const CSS = "CSS"

// Entry is a catalog color. Hex keeps the catalog's casing.
type Entry struct {
	Name     string
	Hex      string
	RGB      string
	Category string
}

func (e Entry) String() string {
	return e.Name
}

// Info describes the entry in every notation, keeping its catalog name.
func (e Entry) Info() (colorspace.Info, error) {
	info, err := colorspace.Describe(e.Hex, func(colorspace.RGB) string { return e.Name })
	if err != nil {
		return colorspace.Info{}, err
	}

	return info, nil
}

var cssEntries = sync.OnceValue(func() []Entry {
	names := append([]string(nil), colornames.Names...)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) Entry {
		return fromRGBA(util.Capitalize(name), colornames.Map[name], CSS)
	})
})

func fromRGBA(name string, c color.RGBA, category string) Entry {
	rgb := colorspace.RGB{R: c.R, G: c.G, B: c.B}
	return Entry{
		Name:     name,
		Hex:      strings.ToUpper(rgb.Hex().String()),
		RGB:      rgb.String(),
		Category: category,
	}
}

// Categories returns category names in display order, CSS last.
func Categories() []string {
	return append(append([]string(nil), categoryOrder...), CSS)
}

// Category returns the entries of a category, matched case-insensitively.
func Category(name string) ([]Entry, bool) {
	if strings.EqualFold(name, CSS) {
		return cssEntries(), true
	}

	for _, c := range categoryOrder {
		if strings.EqualFold(c, name) {
			return withCategory(categories[c], c), true
		}
	}

	return nil, false
}

func withCategory(entries []Entry, category string) []Entry {
	return lo.Map(entries, func(e Entry, _ int) Entry {
		e.Category = category
		return e
	})
}

// All returns the basic colors followed by every hand-picked category.
// CSS colors are only reachable through their category.
func All() []Entry {
	all := withCategory(Basic, "Basic")
	for _, c := range categoryOrder {
		all = append(all, withCategory(categories[c], c)...)
	}

	return all
}

// Filter keeps entries whose name or hex contains query, ignoring case.
// An empty query keeps everything.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	q := strings.ToLower(query)
	return lo.Filter(entries, func(e Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Hex), q)
	})
}

// Fuzzy ranks entries whose name fuzzily matches query, best first.
func Fuzzy(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	names := lo.Map(entries, func(e Entry, _ int) string { return e.Name })
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Entry {
		return entries[r.OriginalIndex]
	})
}
