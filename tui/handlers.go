package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/history"
	"github.com/huewheel/huewheel/internal/ui"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/library"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/query"
	"github.com/huewheel/huewheel/scheme"
	"github.com/huewheel/huewheel/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// allCategories is the pseudo category shown first in both catalogs.
const allCategories = "All"

func (b *statefulBubble) libraryCategories() []string {
	return append([]string{allCategories}, library.Categories()...)
}

func (b *statefulBubble) schemesCategories() []string {
	return append([]string{allCategories}, scheme.Categories()...)
}

func (b *statefulBubble) libraryEntries() []library.Entry {
	entries := library.All()
	if b.libraryCategory > 0 {
		entries, _ = library.Category(b.libraryCategories()[b.libraryCategory])
	}

	if b.libraryQuery == "" {
		return entries
	}

	if viper.GetBool(key.SearchFuzzy) {
		return library.Fuzzy(entries, b.libraryQuery)
	}

	return library.Filter(entries, b.libraryQuery)
}

func (b *statefulBubble) schemesEntries() []scheme.Scheme {
	schemes := scheme.All()
	if b.schemesCategory > 0 {
		schemes, _ = scheme.Category(b.schemesCategories()[b.schemesCategory])
	}

	return scheme.Filter(schemes, b.schemesQuery)
}

func listTitle(name, category, q string) string {
	title := fmt.Sprintf("%s · %s", name, category)
	if q != "" {
		title += fmt.Sprintf(" · %q", q)
	}

	return title
}

func (b *statefulBubble) refreshLibrary() tea.Cmd {
	entries := b.libraryEntries()
	b.libraryC.Title = listTitle("Color Library", b.libraryCategories()[b.libraryCategory], b.libraryQuery)
	b.libraryC.ResetSelected()

	return b.libraryC.SetItems(lo.Map(entries, func(e library.Entry, _ int) list.Item {
		return &listItem{internal: e}
	}))
}

func (b *statefulBubble) refreshSchemes() tea.Cmd {
	schemes := b.schemesEntries()
	b.schemesC.Title = listTitle("Color Schemes", b.schemesCategories()[b.schemesCategory], b.schemesQuery)
	b.schemesC.ResetSelected()

	return b.schemesC.SetItems(lo.Map(schemes, func(s scheme.Scheme, _ int) list.Item {
		return &listItem{internal: s}
	}))
}

func (b *statefulBubble) nextLibraryCategory() tea.Cmd {
	b.libraryCategory = (b.libraryCategory + 1) % len(b.libraryCategories())
	return b.refreshLibrary()
}

func (b *statefulBubble) nextSchemesCategory() tea.Cmd {
	b.schemesCategory = (b.schemesCategory + 1) % len(b.schemesCategories())
	return b.refreshSchemes()
}

func selected[T any](l *list.Model) mo.Option[T] {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return mo.None[T]()
	}

	value, ok := item.internal.(T)
	if !ok {
		return mo.None[T]()
	}

	return mo.Some(value)
}

// copyText runs the clipboard write off the update loop and reports back as a notification.
func (b *statefulBubble) copyText(text, success string) tea.Cmd {
	copier := b.copier
	return func() tea.Msg {
		if !copier(text) {
			log.Warnf("clipboard rejected %q", text)
			return ui.NotificationMsg{Kind: ui.Failure, Text: "Failed to copy"}
		}

		return ui.NotificationMsg{Kind: ui.Success, Text: success}
	}
}

func (b *statefulBubble) copyLabeled(label, text string) tea.Cmd {
	return b.copyText(text, fmt.Sprintf("Copied %s: %s", label, text))
}

func (b *statefulBubble) emit(doc export.Document, success string) tea.Cmd {
	emitter := b.emitter
	return func() tea.Msg {
		filename, err := export.Emit(emitter, doc)
		if err != nil {
			log.Error(err)
			return ui.NotificationMsg{Kind: ui.Failure, Text: fmt.Sprintf("Export failed: %s", err)}
		}

		log.Infof("exported %s", filename)
		return ui.NotificationMsg{Kind: ui.Success, Text: success}
	}
}

func (b *statefulBubble) copyLibraryEntry(notation string) tea.Cmd {
	entry, ok := selected[library.Entry](&b.libraryC).Get()
	if !ok {
		return nil
	}

	switch notation {
	case "rgb":
		return b.copyLabeled(entry.Name, fmt.Sprintf("rgb(%s)", entry.RGB))
	case "hsl":
		info, err := entry.Info()
		if err != nil {
			return ui.NotifyFailure(err.Error())
		}

		return b.copyLabeled(entry.Name, info.HSL.CSS())
	default:
		return b.copyLabeled(entry.Name, entry.Hex)
	}
}

func (b *statefulBubble) copyScheme() tea.Cmd {
	s, ok := selected[scheme.Scheme](&b.schemesC).Get()
	if !ok {
		return nil
	}

	copier := b.copier
	return func() tea.Msg {
		if !copier(s.Joined()) {
			return ui.NotificationMsg{Kind: ui.Failure, Text: "Failed to copy scheme"}
		}

		return ui.NotificationMsg{Kind: ui.Success, Text: fmt.Sprintf("Copied entire %s palette", s.Name)}
	}
}

// copySchemeColor copies the n-th color (1-based) of the selected scheme.
func (b *statefulBubble) copySchemeColor(n int) tea.Cmd {
	s, ok := selected[scheme.Scheme](&b.schemesC).Get()
	if !ok || n < 1 || n > len(s.Colors) {
		return nil
	}

	hex := s.Colors[n-1]
	return b.copyText(hex, fmt.Sprintf("Copied from %s: %s", s.Name, hex))
}

func (b *statefulBubble) exportScheme() tea.Cmd {
	s, ok := selected[scheme.Scheme](&b.schemesC).Get()
	if !ok {
		return nil
	}

	return b.emit(export.NewScheme(s, b.now()), fmt.Sprintf("Downloaded %s scheme", s.Name))
}

func (b *statefulBubble) moveCursor(dCol, dRow int) {
	b.cursorCol = util.Clamp(b.cursorCol+dCol, 0, b.grid.Cols-1)
	b.cursorRow = util.Clamp(b.cursorRow+dRow, 0, b.grid.Rows-1)
}

// pick selects the color under the cursor. Cells outside the wheel are ignored.
func (b *statefulBubble) pick() {
	dx, dy := b.grid.Offset(b.cursorCol, b.cursorRow)
	if info, ok := b.selection.Pick(b.grid.Geometry, dx, dy); ok {
		log.Debugf("picked %s at (%.1f, %.1f)", info.Hex, dx, dy)
	}
}

func (b *statefulBubble) copySelected(notation string) tea.Cmd {
	info, ok := b.selection.Color().Get()
	if !ok {
		return ui.NotifyFailure("Please select a color from the wheel first")
	}

	switch notation {
	case "rgb":
		return b.copyLabeled("RGB", info.RGB.CSS())
	case "hsl":
		return b.copyLabeled("HSL", info.HSL.CSS())
	default:
		return b.copyLabeled("HEX", info.Hex.String())
	}
}

func (b *statefulBubble) currentRule() harmony.Rule {
	return b.rules[b.ruleIndex]
}

func (b *statefulBubble) nextRule() {
	b.ruleIndex = (b.ruleIndex + 1) % len(b.rules)
}

func (b *statefulBubble) setPalette(palette []colorspace.PaletteColor, rule string, baseHue float64) {
	b.palette = palette
	b.paletteRule = rule
	b.paletteBaseHue = baseHue
	b.paletteIndex = 0

	if err := history.Save(palette, baseHue, rule, b.now()); err != nil {
		log.Warnf("could not remember palette: %v", err)
	}
}

func (b *statefulBubble) generate() tea.Cmd {
	rule := b.currentRule()
	palette, err := harmony.ForSelection(b.selection.BaseHue(), rule)
	if err != nil {
		if errors.Is(err, harmony.ErrNoBaseColor) {
			return ui.NotifyFailure("Please select a color from the wheel first")
		}

		return ui.NotifyFailure(err.Error())
	}

	b.setPalette(palette, rule.Name, b.selection.BaseHue().MustGet())
	return ui.NotifySuccess(fmt.Sprintf("Generated %s color palette!", rule.Name))
}

func (b *statefulBubble) randomize() tea.Cmd {
	palette, baseHue := harmony.Random(b.random)
	b.selection.Adopt(baseHue)
	b.setPalette(palette, "", baseHue)
	return ui.NotifySuccess("Generated random color palette!")
}

func (b *statefulBubble) movePalette(delta int) {
	if len(b.palette) == 0 {
		return
	}

	b.paletteIndex = (b.paletteIndex + delta + len(b.palette)) % len(b.palette)
}

func (b *statefulBubble) copyPaletteColor() tea.Cmd {
	if len(b.palette) == 0 {
		return ui.NotifyFailure("No palette generated yet")
	}

	c := b.palette[b.paletteIndex]
	return b.copyLabeled(c.Name, c.Hex.String())
}

func (b *statefulBubble) copyPalette() tea.Cmd {
	if len(b.palette) == 0 {
		return ui.NotifyFailure("No palette generated yet")
	}

	return b.copyLabeled("palette", harmony.Joined(b.palette))
}

func (b *statefulBubble) exportPalette() tea.Cmd {
	doc, err := export.NewPalette(b.palette, b.paletteBaseHue, b.paletteRule, b.now())
	if err != nil {
		if errors.Is(err, export.ErrEmptyPalette) {
			return ui.NotifyFailure("No palette generated yet")
		}

		return ui.NotifyFailure(err.Error())
	}

	return b.emit(doc, "Palette downloaded successfully")
}

func (b *statefulBubble) startSearch(scope query.Scope) {
	b.searchScope = scope
	b.searchSuggestion = mo.None[string]()

	switch scope {
	case query.Library:
		b.inputC.SetValue(b.libraryQuery)
		b.inputC.Placeholder = "Search by name or hex..."
	case query.Schemes:
		b.inputC.SetValue(b.schemesQuery)
		b.inputC.Placeholder = "Search schemes..."
	}

	b.inputC.CursorEnd()
	b.inputC.Focus()
	b.newState(searchState)
}

// applySearch commits the typed query to the list it was started from.
func (b *statefulBubble) applySearch() tea.Cmd {
	q := b.inputC.Value()
	b.inputC.Blur()

	if err := query.Remember(b.searchScope, q, 1); err != nil {
		log.Warn(err)
	}

	b.previousState()

	switch b.searchScope {
	case query.Schemes:
		b.schemesQuery = q
		return b.refreshSchemes()
	default:
		b.libraryQuery = q
		return b.refreshLibrary()
	}
}
