// Package tui is the full-screen terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Page names accepted by Options.Page.
const (
	PageLibrary = "library"
	PageSchemes = "schemes"
	PageWheel   = "wheel"
)

type Options struct {
	// Page opens a page directly instead of the page menu.
	Page string
}

// Run starts the interface and blocks until the user quits.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	switch options.Page {
	case PageLibrary:
		bubble.newState(libraryState)
	case PageSchemes:
		bubble.newState(schemesState)
	case PageWheel:
		bubble.newState(wheelState)
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
