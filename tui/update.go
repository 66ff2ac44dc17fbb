package tui

import (
	"strconv"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/huewheel/huewheel/query"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// notifications are consumed here whatever the state
	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back) && b.state != searchState:
			switch b.state {
			case libraryState:
				b.libraryC.ResetSelected()
			case schemesState:
				b.schemesC.ResetSelected()
			}

			b.previousState()
			return b, nil
		}
	}

	switch b.state {
	case pagesState:
		return b.updatePages(msg)
	case libraryState:
		return b.updateLibrary(msg)
	case schemesState:
		return b.updateSchemes(msg)
	case wheelState:
		return b.updateWheel(msg)
	case searchState:
		return b.updateSearch(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

// wrapAround makes up on the first item select the last one and vice versa.
func (b *statefulBubble) wrapAround(l *list.Model, msg tea.KeyMsg) bool {
	n := len(l.Items())
	if n == 0 {
		return false
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.up) && l.Index() == 0:
		l.Select(n - 1)
		return true
	case bubblesKey.Matches(msg, b.keymap.down) && l.Index() == n-1:
		l.Select(0)
		return true
	}

	return false
}

func (b *statefulBubble) updatePages(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case b.wrapAround(&b.pagesC, msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if p, ok := selected[page](&b.pagesC).Get(); ok {
				b.newState(p.state)
			}

			return b, nil
		}
	}

	b.pagesC, cmd = b.pagesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateLibrary(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case b.wrapAround(&b.libraryC, msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm), bubblesKey.Matches(msg, b.keymap.copyHex):
			return b, b.copyLibraryEntry("hex")
		case bubblesKey.Matches(msg, b.keymap.copyRGB):
			return b, b.copyLibraryEntry("rgb")
		case bubblesKey.Matches(msg, b.keymap.copyHSL):
			return b, b.copyLibraryEntry("hsl")
		case bubblesKey.Matches(msg, b.keymap.nextCategory):
			return b, b.nextLibraryCategory()
		case bubblesKey.Matches(msg, b.keymap.search):
			b.startSearch(query.Library)
			return b, nil
		}
	}

	b.libraryC, cmd = b.libraryC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSchemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case b.wrapAround(&b.schemesC, msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm), bubblesKey.Matches(msg, b.keymap.copyAll):
			return b, b.copyScheme()
		case bubblesKey.Matches(msg, b.keymap.copyNth):
			n, _ := strconv.Atoi(msg.String())
			return b, b.copySchemeColor(n)
		case bubblesKey.Matches(msg, b.keymap.export):
			return b, b.exportScheme()
		case bubblesKey.Matches(msg, b.keymap.nextCategory):
			return b, b.nextSchemesCategory()
		case bubblesKey.Matches(msg, b.keymap.search):
			b.startSearch(query.Schemes)
			return b, nil
		}
	}

	b.schemesC, cmd = b.schemesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateWheel(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case bubblesKey.Matches(msgKey, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(msgKey, b.keymap.up):
		b.moveCursor(0, -1)
	case bubblesKey.Matches(msgKey, b.keymap.down):
		b.moveCursor(0, 1)
	case bubblesKey.Matches(msgKey, b.keymap.left):
		b.moveCursor(-1, 0)
	case bubblesKey.Matches(msgKey, b.keymap.right):
		b.moveCursor(1, 0)
	case bubblesKey.Matches(msgKey, b.keymap.pick):
		b.pick()
	case bubblesKey.Matches(msgKey, b.keymap.copyHex):
		return b, b.copySelected("hex")
	case bubblesKey.Matches(msgKey, b.keymap.copyRGB):
		return b, b.copySelected("rgb")
	case bubblesKey.Matches(msgKey, b.keymap.copyHSL):
		return b, b.copySelected("hsl")
	case bubblesKey.Matches(msgKey, b.keymap.nextRule):
		b.nextRule()
	case bubblesKey.Matches(msgKey, b.keymap.generate):
		return b, b.generate()
	case bubblesKey.Matches(msgKey, b.keymap.random):
		return b, b.randomize()
	case bubblesKey.Matches(msgKey, b.keymap.palettePrev):
		b.movePalette(-1)
	case bubblesKey.Matches(msgKey, b.keymap.paletteNext):
		b.movePalette(1)
	case bubblesKey.Matches(msgKey, b.keymap.copyPaletteColor):
		return b, b.copyPaletteColor()
	case bubblesKey.Matches(msgKey, b.keymap.copyAll):
		return b, b.copyPalette()
	case bubblesKey.Matches(msgKey, b.keymap.export):
		return b, b.exportPalette()
	case bubblesKey.Matches(msgKey, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return b, nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.applySearch()
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.CursorEnd()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.searchScope, b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.quit) {
			return b, tea.Quit
		}
	}

	return b, nil
}
