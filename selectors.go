package sitecheck

import "github.com/andybalholm/cascadia"

// Selectors bundles the compiled matchers the scanner queries documents
// with. They are built once at startup and passed in explicitly, which also
// allows tests to inject alternates.
type Selectors struct {
	Href  cascadia.Selector
	Src   cascadia.Selector
	ID    cascadia.Selector
	Title cascadia.Selector
}

func NewSelectors() Selectors {
	return Selectors{
		Href:  cascadia.MustCompile("[href]"),
		Src:   cascadia.MustCompile("[src]"),
		ID:    cascadia.MustCompile("[id]"),
		Title: cascadia.MustCompile("title"),
	}
}
