package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/style"
)

// statefulKeymap holds every binding; help() decides which ones the current state shows.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	back, confirm,
	up, down, left, right,
	top, bottom,
	search, acceptSearchSuggestion,
	nextCategory,
	copyHex, copyRGB, copyHSL, copyAll, copyNth,
	export,
	pick, nextRule, generate, random,
	palettePrev, paletteNext, copyPaletteColor,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept search suggestion"),
		),
		nextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		copyHex: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		copyRGB: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy rgb"),
		),
		copyHSL: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "copy hsl"),
		),
		copyAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "copy all"),
		),
		copyNth: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "copy color"),
		),
		export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("pick")),
		),
		nextRule: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next rule"),
		),
		generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		random: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "random palette"),
		),
		palettePrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev swatch"),
		),
		paletteNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next swatch"),
		),
		copyPaletteColor: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy swatch"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case pagesState:
		return to2(h(k.confirm))
	case libraryState:
		copyHex := withDescription(k.confirm, "copy hex")
		return h(copyHex, k.nextCategory, k.search, k.back),
			h(copyHex, k.copyRGB, k.copyHSL, k.nextCategory, k.search, k.back)
	case schemesState:
		copyAll := withDescription(k.confirm, "copy all")
		return h(copyAll, k.export, k.nextCategory, k.search, k.back),
			h(copyAll, k.copyNth, k.export, k.nextCategory, k.search, k.back)
	case wheelState:
		return h(k.pick, k.generate, k.random, k.nextRule, k.export, k.back),
			h(k.pick, k.up, k.down, k.left, k.right, k.copyHex, k.copyRGB, k.copyHSL,
				k.nextRule, k.generate, k.random, k.palettePrev, k.paletteNext, k.copyPaletteColor, k.copyAll, k.export, k.back)
	case searchState:
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.back, k.forceQuit))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
