// Package harmony builds palettes from a base hue and a color-theory rule.
package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huewheel/huewheel/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

var (
	ErrUnknownRule = errors.New("unknown harmony rule")
	ErrEmptyRule   = errors.New("harmony rule has no offsets")
)

// Rule is an ordered list of hue offsets in degrees relative to the base hue.
type Rule struct {
	Name        string
	Description string
	Offsets     []float64

	// Custom is true for rules loaded from user scripts.
	Custom bool
}

func (r Rule) String() string {
	return r.Name
}

// Title is the display form of the name: "split-complementary" becomes "Split Complementary".
func (r Rule) Title() string {
	words := strings.FieldsFunc(r.Name, func(c rune) bool { return c == '-' || c == '_' || c == ' ' })
	return strings.Join(lo.Map(words, func(w string, _ int) string {
		return util.Capitalize(w)
	}), " ")
}

var (
	Complementary = Rule{
		Name:        "complementary",
		Description: "The base hue and its opposite",
		Offsets:     []float64{0, 180},
	}
	Triadic = Rule{
		Name:        "triadic",
		Description: "Three hues evenly spaced around the wheel",
		Offsets:     []float64{0, 120, 240},
	}
	Tetradic = Rule{
		Name:        "tetradic",
		Description: "Four hues forming a square",
		Offsets:     []float64{0, 90, 180, 270},
	}
	Analogous = Rule{
		Name:        "analogous",
		Description: "Neighbouring hues on one side of the wheel",
		Offsets:     []float64{-30, 0, 30, 60},
	}
	SplitComplementary = Rule{
		Name:        "split-complementary",
		Description: "The base hue and the two neighbours of its opposite",
		Offsets:     []float64{0, 150, 210},
	}
)

// Builtins returns the built-in rules in display order.
func Builtins() []Rule {
	return []Rule{Complementary, Triadic, Tetradic, Analogous, SplitComplementary}
}

var aliases = map[string]string{
	"splitcomplementary":  SplitComplementary.Name,
	"split_complementary": SplitComplementary.Name,
	"split":               SplitComplementary.Name,
	"complement":          Complementary.Name,
	"square":              Tetradic.Name,
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	if alias, ok := aliases[name]; ok {
		return alias
	}

	return name
}

// ParseRule resolves a built-in rule by name or alias.
func ParseRule(name string) (Rule, error) {
	return Find(name, Builtins())
}

// Find resolves name among rules. The first match wins. When nothing
// matches, the error names the closest candidate.
func Find(name string, rules []Rule) (Rule, error) {
	want := canonical(name)
	for _, r := range rules {
		if canonical(r.Name) == want {
			return r, nil
		}
	}

	if len(rules) == 0 {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}

	closest := lo.MinBy(rules, func(a, b Rule) bool {
		return levenshtein.Distance(want, a.Name) < levenshtein.Distance(want, b.Name)
	})

	return Rule{}, fmt.Errorf("%w: %s, did you mean %s?", ErrUnknownRule, name, closest.Name)
}

// Names lists rule names in order.
func Names(rules []Rule) []string {
	return lo.Map(rules, func(r Rule, _ int) string { return r.Name })
}
