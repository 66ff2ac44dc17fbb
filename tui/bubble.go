package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/huewheel/huewheel/clipboard"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/harmony/custom"
	"github.com/huewheel/huewheel/internal/ui"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/query"
	"github.com/huewheel/huewheel/style"
	"github.com/huewheel/huewheel/util"
	"github.com/huewheel/huewheel/wheel"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	inputC    textinput.Model
	pagesC    list.Model
	libraryC  list.Model
	schemesC  list.Model
	helpC     help.Model
	notifier  *ui.Model
	lastError error

	// catalog browsing
	libraryCategory  int
	libraryQuery     string
	schemesCategory  int
	schemesQuery     string
	searchScope      query.Scope
	searchSuggestion mo.Option[string]

	// wheel
	grid           wheel.Grid
	cells          [][]mo.Option[wheel.Sample]
	cursorCol      int
	cursorRow      int
	selection      wheel.Selection
	rules          []harmony.Rule
	ruleIndex      int
	palette        []colorspace.PaletteColor
	paletteRule    string
	paletteBaseHue float64
	paletteIndex   int

	// side effects, replaced in tests
	copier  func(text string) bool
	emitter export.Emitter
	random  harmony.Source
	now     func() time.Time

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where we came from.
// Search and error screens are never returned to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{searchState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.pagesC, &b.libraryC, &b.schemesC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) (*statefulBubble, error) {
	geometry, err := wheel.FromConfig()
	if err != nil {
		return nil, err
	}

	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},

		grid:  wheel.NewGrid(geometry, 2*viper.GetInt(key.TUIWheelRadius)+1),
		rules: custom.All(),

		copier:  clipboard.Copy,
		emitter: export.NewFileEmitter(),
		random:  harmony.DefaultSource(),
		now:     time.Now,
	}

	bubble.cells = bubble.grid.Cells()
	bubble.cursorCol = bubble.grid.Cols / 2
	bubble.cursorRow = bubble.grid.Rows / 2

	if rule, err := harmony.Find(viper.GetString(key.HarmonyDefaultRule), bubble.rules); err == nil {
		_, bubble.ruleIndex, _ = lo.FindIndexOf(bubble.rules, func(r harmony.Rule) bool { return r.Name == rule.Name })
	}

	makeList := func(title string, titleBg lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Surface).Background(titleBg).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.pagesC = makeList("Huewheel", style.AccentColor)
	bubble.pagesC.SetItems(lo.Map(pages, func(p page, _ int) list.Item {
		return &listItem{internal: p}
	}))

	bubble.libraryC = makeList("Color Library", style.Lavender)
	bubble.libraryC.SetStatusBarItemName("color", "colors")

	bubble.schemesC = makeList("Color Schemes", style.Peach)
	bubble.schemesC.SetStatusBarItemName("scheme", "schemes")

	bubble.refreshLibrary()
	bubble.refreshSchemes()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble, nil
}
