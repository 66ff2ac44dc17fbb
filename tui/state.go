package tui

type state int

const (
	pagesState state = iota
	libraryState
	schemesState
	wheelState
	searchState
	errorState
)
