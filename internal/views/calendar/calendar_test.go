package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local) }

func newAt(t *testing.T) *Model {
	t.Helper()
	m := New()
	m.now = fixedNow
	m.Today()
	return m
}

func ev(raw string) gateway.Event { return gateway.NewEvent(raw) }

func TestClearEventsIsIdempotent(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{ev(`{"title":"A","start":"2025-03-02"}`)})
	m.ClearEvents()
	m.ClearEvents()
	assert.Empty(t, m.Events())
	assert.False(t, m.Shown())
}

func TestSetEventsReplacesWholesale(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{ev(`{"title":"A","start":"2025-03-02"}`), ev(`{"title":"B","start":"2025-03-05"}`)})
	m.SetEvents([]gateway.Event{ev(`{"title":"C","start":"2025-03-07"}`)})

	entries := m.MonthEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "C", entries[0].Title)
	assert.True(t, m.Shown())
}

func TestSetEventsEmptyIsShown(t *testing.T) {
	m := newAt(t)
	m.SetEvents(nil)
	assert.True(t, m.Shown())
	assert.Contains(t, m.View(false), "Sin pedidos")
}

func TestSetEventsJumpsToEarliestMonth(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{
		ev(`{"title":"late","start":"2025-09-01"}`),
		ev(`{"title":"early","start":"2025-06-15"}`),
	})
	assert.Equal(t, time.June, m.Month().Month())
	assert.Equal(t, 2025, m.Month().Year())
}

func TestSetEventsStaysWhenVisibleMonthHasEvents(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{
		ev(`{"title":"jan","start":"2025-01-30"}`),
		ev(`{"title":"mar","start":"2025-03-20"}`),
	})
	assert.Equal(t, time.March, m.Month().Month())
}

func TestMonthNavigation(t *testing.T) {
	m := newAt(t)
	m.NextMonth()
	assert.Equal(t, time.April, m.Month().Month())
	m.PrevMonth()
	m.PrevMonth()
	assert.Equal(t, time.February, m.Month().Month())
	m.Today()
	assert.Equal(t, time.March, m.Month().Month())
}

func TestNavigationDoesNotDropEvents(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{ev(`{"title":"A","start":"2025-03-02"}`)})
	m.NextMonth()
	assert.Empty(t, m.MonthEntries())
	assert.Len(t, m.Events(), 1)
	m.PrevMonth()
	assert.Len(t, m.MonthEntries(), 1)
}

func TestParseEntry(t *testing.T) {
	e, ok := ParseEntry(ev(`{"title":"CHANEL – PEDIDO","start":"2025-01-30","allDay":true,"backgroundColor":"#f58220"}`))
	require.True(t, ok)
	assert.Equal(t, "CHANEL – PEDIDO", e.Title)
	assert.Equal(t, "#f58220", e.Color)
	assert.Equal(t, 30, e.Date.Day())

	e, ok = ParseEntry(ev(`{"title":"x","start":"2025-02-01T09:00:00"}`))
	require.True(t, ok)
	assert.Equal(t, time.February, e.Date.Month())

	_, ok = ParseEntry(ev(`{"title":"no start"}`))
	assert.False(t, ok)
	_, ok = ParseEntry(ev(`{"start":"30-ene-25"}`))
	assert.False(t, ok)
}

func TestViewListsMonthEvents(t *testing.T) {
	m := newAt(t)
	m.Width = 60
	m.SetEvents([]gateway.Event{
		ev(`{"title":"DIOR – PEDIDO","start":"2025-03-14"}`),
		ev(`{"title":"JA – PEDIDO","start":"2025-04-01"}`),
	})
	v := m.View(true)
	assert.Contains(t, v, "Marzo 2025")
	assert.Contains(t, v, "DIOR – PEDIDO")
	assert.NotContains(t, v, "JA – PEDIDO")
	assert.Contains(t, v, "Lu")
}

func TestViewFitsMinimumWidth(t *testing.T) {
	m := newAt(t)
	m.SetEvents([]gateway.Event{ev(`{"title":"DIOR – PEDIDO","start":"2025-03-14"}`)})
	v := m.View(true)
	assert.Contains(t, v, "←/→ mes")
	for _, line := range strings.Split(v, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), cellWidth*7+4, "%q", line)
	}
}

func TestViewBeforeSelection(t *testing.T) {
	m := newAt(t)
	assert.Contains(t, m.View(false), "Seleccione proveedor")
}

func TestGridShape(t *testing.T) {
	m := newAt(t)
	// March 2025 starts on a Saturday and spans six week rows.
	rows := m.grid(nil)
	assert.Len(t, rows, 6)
}
