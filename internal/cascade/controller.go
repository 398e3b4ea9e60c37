// Package cascade keeps the provider and country filters, their in-flight
// fetches and the displayed events consistent.
//
// Every fetch is a tea.Cmd tagged with the filter generation current when it
// was issued. Its completion message is applied only if that generation is
// still current; otherwise it is dropped. In-flight requests are never
// aborted on supersession, only discarded when they complete.
package cascade

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sainthonore/pedidos/internal/filter"
	"github.com/sainthonore/pedidos/internal/gateway"
	"github.com/sirupsen/logrus"
)

// Calendar displays events.
type Calendar interface {
	// ClearEvents removes all displayed events. Idempotent.
	ClearEvents()
	// SetEvents replaces the displayed events wholesale.
	SetEvents(events []gateway.Event)
}

// Options is one selectable filter list.
type Options interface {
	// Reset empties the list back to its placeholder.
	Reset()
	SetOptions(ids []string)
	Select(id string)
	SetEnabled(enabled bool)
}

// Linker builds the calendar export link for a complete selection.
type Linker interface {
	ICSURL(provider, country string) string
}

// Config wires a Controller to its collaborators. Links and Logger may be nil.
type Config struct {
	Gateway   gateway.Gateway
	Calendar  Calendar
	Providers Options
	Countries Options
	Links     Linker
	Logger    logrus.FieldLogger
}

// Controller is the cascade state machine. It is the only writer of the
// filter state and must be driven from a single goroutine (the Bubble Tea
// update loop).
type Controller struct {
	ctx       context.Context
	gw        gateway.Gateway
	state     *filter.State
	cal       Calendar
	providers Options
	countries Options
	links     Linker
	log       logrus.FieldLogger

	// providerSeq numbers provider loads; only the latest may apply.
	providerSeq uint64
}

// New creates a controller with an empty selection. ctx is handed to every
// gateway call; cancelling it abandons all outstanding fetches.
func New(ctx context.Context, cfg Config) *Controller {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Controller{
		ctx:       ctx,
		gw:        cfg.Gateway,
		state:     filter.New(),
		cal:       cfg.Calendar,
		providers: cfg.Providers,
		countries: cfg.Countries,
		links:     cfg.Links,
		log:       log,
	}
}

// Selection returns the current selection.
func (c *Controller) Selection() filter.Selection { return c.state.Selection() }

// Phase returns the current cascade phase.
func (c *Controller) Phase() filter.Phase { return c.state.Phase() }

// Generation returns the current filter generation.
func (c *Controller) Generation() filter.Generation { return c.state.Generation() }

// Start loads the provider list. Both option lists are disabled until their
// data arrives.
func (c *Controller) Start() tea.Cmd {
	c.providers.Reset()
	c.providers.SetEnabled(false)
	c.countries.Reset()
	c.countries.SetEnabled(false)
	c.cal.ClearEvents()

	c.providerSeq++
	gen, seq := c.state.Generation(), c.providerSeq
	ctx, gw := c.ctx, c.gw
	return func() tea.Msg {
		providers, err := gw.FetchProviders(ctx)
		return ProvidersLoadedMsg{Gen: gen, Seq: seq, Providers: providers, Err: err}
	}
}

// OnProviderChange reacts to the user picking a provider ("" clears it).
func (c *Controller) OnProviderChange(id string) tea.Cmd {
	gen := c.state.SetProvider(id)
	c.cal.ClearEvents()
	c.countries.Reset()
	c.countries.SetEnabled(false)

	log := c.log.WithFields(logrus.Fields{"gen": gen, "provider": id})
	if id == "" {
		log.Debug("provider cleared")
		return nil
	}
	log.Debug("provider changed, fetching countries")

	ctx, gw := c.ctx, c.gw
	return func() tea.Msg {
		countries, err := gw.FetchCountries(ctx, id)
		return CountriesLoadedMsg{Gen: gen, Provider: id, Countries: countries, Err: err}
	}
}

// OnCountryChange reacts to the user picking a country ("" clears it). It
// does nothing while no provider is selected.
func (c *Controller) OnCountryChange(id string) tea.Cmd {
	gen, ok := c.state.SetCountry(id)
	if !ok {
		c.log.WithField("country", id).Debug("country ignored, no provider selected")
		return nil
	}
	c.cal.ClearEvents()

	sel := c.state.Selection()
	log := c.log.WithFields(logrus.Fields{"gen": gen, "provider": sel.Provider, "country": id})
	if id == "" {
		log.Debug("country cleared")
		return nil
	}
	log.Debug("country changed, fetching events")

	ctx, gw := c.ctx, c.gw
	return func() tea.Msg {
		events, err := gw.FetchEvents(ctx, sel.Provider, sel.Country)
		return EventsLoadedMsg{Gen: gen, Selection: sel, Events: events, Err: err}
	}
}

// Refresh re-triggers the current selection. It is the only retry path
// after a failed fetch.
func (c *Controller) Refresh() tea.Cmd {
	sel := c.state.Selection()
	switch c.state.Phase() {
	case filter.PhaseFullySelected:
		return c.OnCountryChange(sel.Country)
	case filter.PhaseProviderChosen:
		return c.OnProviderChange(sel.Provider)
	default:
		return c.Start()
	}
}

// ExportLink returns the ICS link for the current selection. It is only
// available once both provider and country are selected.
func (c *Controller) ExportLink() (string, bool) {
	if c.links == nil || c.state.Phase() != filter.PhaseFullySelected {
		return "", false
	}
	sel := c.state.Selection()
	return c.links.ICSURL(sel.Provider, sel.Country), true
}

// Update applies a fetch completion. handled is false for messages the
// controller does not own.
func (c *Controller) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case ProvidersLoadedMsg:
		return c.providersLoaded(msg), true
	case CountriesLoadedMsg:
		return c.countriesLoaded(msg), true
	case EventsLoadedMsg:
		return c.eventsLoaded(msg), true
	}
	return nil, false
}

// Current reports whether a fetch completion is the latest of its kind.
func (c *Controller) Current(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ProvidersLoadedMsg:
		return msg.Seq == c.providerSeq
	case CountriesLoadedMsg:
		return c.state.Matches(msg.Gen)
	case EventsLoadedMsg:
		return c.state.Matches(msg.Gen)
	}
	return false
}

func (c *Controller) providersLoaded(msg ProvidersLoadedMsg) tea.Cmd {
	if msg.Seq != c.providerSeq {
		return c.stale("providers", msg.Gen, msg.Err)
	}
	if msg.Err != nil {
		if !c.state.Matches(msg.Gen) {
			return c.stale("providers", msg.Gen, msg.Err)
		}
		return c.fail("providers", msg.Err)
	}
	c.providers.SetOptions(msg.Providers)
	c.providers.SetEnabled(true)

	// A lone provider is picked for the user, unless they already moved.
	if len(msg.Providers) == 1 && c.state.Matches(msg.Gen) && c.state.Phase() == filter.PhaseEmpty {
		c.providers.Select(msg.Providers[0])
		return c.OnProviderChange(msg.Providers[0])
	}
	return nil
}

func (c *Controller) countriesLoaded(msg CountriesLoadedMsg) tea.Cmd {
	if !c.state.Matches(msg.Gen) {
		return c.stale("countries", msg.Gen, msg.Err)
	}
	if msg.Err != nil {
		// The country list stays disabled until the user retries.
		return c.fail("countries", msg.Err)
	}

	c.countries.SetOptions(msg.Countries)
	c.countries.SetEnabled(true)
	c.log.WithFields(logrus.Fields{"gen": msg.Gen, "provider": msg.Provider, "count": len(msg.Countries)}).Debug("countries applied")

	if len(msg.Countries) == 1 {
		c.countries.Select(msg.Countries[0])
		return c.OnCountryChange(msg.Countries[0])
	}
	return nil
}

func (c *Controller) eventsLoaded(msg EventsLoadedMsg) tea.Cmd {
	if !c.state.Matches(msg.Gen) {
		return c.stale("events", msg.Gen, msg.Err)
	}
	if msg.Err != nil {
		return c.fail("events", msg.Err)
	}
	c.cal.SetEvents(msg.Events)
	c.log.WithFields(logrus.Fields{
		"gen":      msg.Gen,
		"provider": msg.Selection.Provider,
		"country":  msg.Selection.Country,
		"count":    len(msg.Events),
	}).Debug("events applied")
	return nil
}

// stale drops a superseded completion. An expired session still navigates:
// it is invalid whatever the selection.
func (c *Controller) stale(op string, gen filter.Generation, err error) tea.Cmd {
	c.log.WithFields(logrus.Fields{"op": op, "gen": gen, "current": c.state.Generation()}).Debug("stale result discarded")
	if gateway.IsUnauthenticated(err) {
		return c.fail(op, err)
	}
	return nil
}

func (c *Controller) fail(op string, err error) tea.Cmd {
	if gateway.IsUnauthenticated(err) {
		c.log.WithField("op", op).Warn("session expired")
		return func() tea.Msg { return UnauthenticatedMsg{Err: err} }
	}
	c.log.WithField("op", op).WithError(err).Error("fetch failed")
	text := fmt.Sprintf("No se pudo cargar %s: %v", opLabel(op), err)
	return func() tea.Msg { return NoticeMsg{Level: NoticeError, Text: text} }
}

func opLabel(op string) string {
	switch op {
	case "providers":
		return "proveedores"
	case "countries":
		return "países"
	case "events":
		return "eventos"
	}
	return op
}
