package cascade

import (
	"github.com/sainthonore/pedidos/internal/filter"
	"github.com/sainthonore/pedidos/internal/gateway"
)

// --- Fetch completions. Each carries the generation captured when the
// fetch was issued. ---

// ProvidersLoadedMsg completes a provider list fetch. Start does not move
// the generation, so Seq tells repeated loads apart.
type ProvidersLoadedMsg struct {
	Gen       filter.Generation
	Seq       uint64
	Providers []string
	Err       error
}

// CountriesLoadedMsg completes a country list fetch for Provider.
type CountriesLoadedMsg struct {
	Gen       filter.Generation
	Provider  string
	Countries []string
	Err       error
}

// EventsLoadedMsg completes an event fetch for Selection.
type EventsLoadedMsg struct {
	Gen       filter.Generation
	Selection filter.Selection
	Events    []gateway.Event
	Err       error
}

// --- Outputs for the surrounding app. ---

// UnauthenticatedMsg asks the app to show a blocking notice and navigate
// to the login surface.
type UnauthenticatedMsg struct{ Err error }

// NoticeLevel grades a NoticeMsg.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// NoticeMsg is a non-blocking notice for the status bar.
type NoticeMsg struct {
	Level NoticeLevel
	Text  string
}
