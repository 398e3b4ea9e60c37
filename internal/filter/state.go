// Package filter holds the provider/country selection and the generation
// counter used to recognise superseded fetches.
package filter

// Generation tags one version of the Selection. It only ever grows.
type Generation uint64

// Selection is the current (provider, country) pair. An empty string means
// nothing is selected at that level.
type Selection struct {
	Provider string
	Country  string
}

// Complete reports whether both levels are selected.
func (s Selection) Complete() bool {
	return s.Provider != "" && s.Country != ""
}

// Phase is the cascade state derived from a Selection.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseProviderChosen
	PhaseFullySelected
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseProviderChosen:
		return "provider_chosen"
	case PhaseFullySelected:
		return "fully_selected"
	}
	return "unknown"
}

// State owns the Selection and its Generation. Every mutation bumps the
// generation; it is not safe for concurrent use and is only touched from the
// UI update loop.
type State struct {
	sel Selection
	gen Generation
}

// New returns an empty state at generation 0.
func New() *State {
	return &State{}
}

// SetProvider selects a provider, invalidates any country chosen under the
// previous one and returns the new generation.
func (s *State) SetProvider(id string) Generation {
	s.sel = Selection{Provider: id}
	s.gen++
	return s.gen
}

// SetCountry selects a country under the current provider. Without a
// provider it changes nothing and returns the current generation and false.
func (s *State) SetCountry(id string) (Generation, bool) {
	if s.sel.Provider == "" {
		return s.gen, false
	}
	s.sel.Country = id
	s.gen++
	return s.gen, true
}

// Generation returns the current generation.
func (s *State) Generation() Generation {
	return s.gen
}

// Matches reports whether gen is still the current generation.
func (s *State) Matches(gen Generation) bool {
	return gen == s.gen
}

// Selection returns a copy of the current selection.
func (s *State) Selection() Selection {
	return s.sel
}

// Phase derives the cascade phase from the selection.
func (s *State) Phase() Phase {
	switch {
	case s.sel.Provider == "":
		return PhaseEmpty
	case s.sel.Country == "":
		return PhaseProviderChosen
	default:
		return PhaseFullySelected
	}
}
