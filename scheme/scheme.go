// Package scheme holds curated color schemes grouped by design system.
package scheme

import (
	"strings"

	"github.com/samber/lo"
)

// Scheme is an ordered list of hex codes with some context.
type Scheme struct {
	Name        string
	Colors      []string
	Description string
	Category    string
}

func (s Scheme) String() string {
	return s.Name
}

// Joined is the scheme as a single copyable line: "#a, #b, #c".
func (s Scheme) Joined() string {
	return strings.Join(s.Colors, ", ")
}

// Categories returns category names in display order.
func Categories() []string {
	return append([]string(nil), categoryOrder...)
}

// Category returns the schemes of a category, matched case-insensitively.
func Category(name string) ([]Scheme, bool) {
	for _, c := range categoryOrder {
		if strings.EqualFold(c, name) {
			return schemes[c], true
		}
	}

	return nil, false
}

// All returns every scheme, category by category.
func All() []Scheme {
	return lo.FlatMap(categoryOrder, func(c string, _ int) []Scheme {
		return schemes[c]
	})
}

// Find looks a scheme up by name, ignoring case.
func Find(name string) (Scheme, bool) {
	return lo.Find(All(), func(s Scheme) bool {
		return strings.EqualFold(s.Name, strings.TrimSpace(name))
	})
}

// Filter keeps schemes whose name, description or category contains query,
// ignoring case. An empty query keeps everything.
func Filter(list []Scheme, query string) []Scheme {
	if query == "" {
		return list
	}

	q := strings.ToLower(query)
	return lo.Filter(list, func(s Scheme, _ int) bool {
		return lo.SomeBy([]string{s.Name, s.Description, s.Category}, func(field string) bool {
			return strings.Contains(strings.ToLower(field), q)
		})
	})
}

// Names lists scheme names in order.
func Names(list []Scheme) []string {
	return lo.Map(list, func(s Scheme, _ int) string { return s.Name })
}
