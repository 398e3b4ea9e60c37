// Package calendar renders order events in a month grid.
//
// Events are opaque records. The view only reads the "start", "title" and
// "backgroundColor" fields and ignores records without a parseable start.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/gateway"
	"github.com/sainthonore/pedidos/internal/theme"
	"github.com/tidwall/gjson"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayLabels = [...]string{"Lu", "Ma", "Mi", "Ju", "Vi", "Sá", "Do"}

const cellWidth = 4

// Entry is the displayable part of one event.
type Entry struct {
	Date  time.Time
	Title string
	Color string
}

// Model holds the visible month and the current event set.
type Model struct {
	Width int

	month  time.Time
	events []gateway.Event
	shown  bool
	now    func() time.Time
}

// New creates an empty calendar showing the current month.
func New() *Model {
	m := &Model{now: time.Now}
	m.Today()
	return m
}

// ClearEvents removes every displayed event.
func (m *Model) ClearEvents() {
	m.events = nil
	m.shown = false
}

// SetEvents replaces the displayed events. If none of them falls in the
// visible month, the view moves to the month of the earliest one.
func (m *Model) SetEvents(events []gateway.Event) {
	m.events = append([]gateway.Event(nil), events...)
	m.shown = true

	entries := m.entries()
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		if sameMonth(e.Date, m.month) {
			return
		}
	}
	m.month = firstOfMonth(entries[0].Date)
}

// Events returns the current event set.
func (m *Model) Events() []gateway.Event {
	return append([]gateway.Event(nil), m.events...)
}

// Shown reports whether an event set is on display. It is false after
// ClearEvents, even when the last set was empty.
func (m *Model) Shown() bool { return m.shown }

// Month returns the first day of the visible month.
func (m *Model) Month() time.Time { return m.month }

// PrevMonth moves the view one month back.
func (m *Model) PrevMonth() { m.month = m.month.AddDate(0, -1, 0) }

// NextMonth moves the view one month forward.
func (m *Model) NextMonth() { m.month = m.month.AddDate(0, 1, 0) }

// Today moves the view to the current month.
func (m *Model) Today() { m.month = firstOfMonth(m.now()) }

// MonthEntries returns the events of the visible month, ordered by date.
func (m *Model) MonthEntries() []Entry {
	var out []Entry
	for _, e := range m.entries() {
		if sameMonth(e.Date, m.month) {
			out = append(out, e)
		}
	}
	return out
}

// entries parses and sorts all events. Records without a usable start are
// skipped.
func (m *Model) entries() []Entry {
	out := make([]Entry, 0, len(m.events))
	for _, ev := range m.events {
		e, ok := ParseEntry(ev)
		if ok {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ParseEntry extracts the displayable fields of an event. It accepts a
// date ("2025-01-30") or a date-time start.
func ParseEntry(ev gateway.Event) (Entry, bool) {
	raw := ev.Raw()
	start := gjson.GetBytes(raw, "start").String()
	if len(start) < 10 {
		return Entry{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", start[:10], time.Local)
	if err != nil {
		return Entry{}, false
	}
	return Entry{
		Date:  d,
		Title: gjson.GetBytes(raw, "title").String(),
		Color: gjson.GetBytes(raw, "backgroundColor").String(),
	}, true
}

// View renders the grid and the list of the month's events.
func (m *Model) View(focused bool) string {
	width := m.Width
	if width < cellWidth*7+4 {
		width = cellWidth*7 + 4
	}
	innerW := width - 4

	entries := m.MonthEntries()
	marked := make(map[int]string, len(entries))
	for _, e := range entries {
		if _, ok := marked[e.Date.Day()]; !ok {
			marked[e.Date.Day()] = e.Color
		}
	}

	title := theme.StyleHeader.Render(fmt.Sprintf("%s %d", monthNames[m.month.Month()-1], m.month.Year()))
	lines := []string{theme.Heading(title, "←/→ mes  t hoy", innerW), "", m.header()}
	lines = append(lines, m.grid(marked)...)
	lines = append(lines, "")

	switch {
	case !m.shown:
		lines = append(lines, theme.StyleDimmed.Render("Seleccione proveedor y país para ver los pedidos."))
	case len(entries) == 0:
		lines = append(lines, theme.StyleDimmed.Render(fmt.Sprintf("Sin pedidos este mes (%d en total).", len(m.entries()))))
	default:
		for _, e := range entries {
			dot := lipgloss.NewStyle().Foreground(theme.EventColor(e.Color)).Render("●")
			label := e.Title
			if limit := innerW - 8; limit > 3 && len([]rune(label)) > limit {
				label = string([]rune(label)[:limit-3]) + "..."
			}
			lines = append(lines, fmt.Sprintf("%s %02d  %s", dot, e.Date.Day(), label))
		}
	}

	return theme.Panel(innerW, focused).Render(strings.Join(lines, "\n"))
}

func (m *Model) header() string {
	var b strings.Builder
	for i, l := range weekdayLabels {
		style := theme.StyleDimmed
		if i >= 5 {
			style = lipgloss.NewStyle().Foreground(theme.ColorWeekend)
		}
		b.WriteString(style.Width(cellWidth).Render(l))
	}
	return b.String()
}

func (m *Model) grid(marked map[int]string) []string {
	first := m.month
	// Monday-first offset.
	offset := (int(first.Weekday()) + 6) % 7
	days := first.AddDate(0, 1, -1).Day()
	now := m.now()

	var rows []string
	var b strings.Builder
	for i := 0; i < offset; i++ {
		b.WriteString(strings.Repeat(" ", cellWidth))
	}
	col := offset
	for day := 1; day <= days; day++ {
		style := lipgloss.NewStyle().Width(cellWidth)
		if col >= 5 {
			style = style.Foreground(theme.ColorWeekend)
		}
		if first.Year() == now.Year() && first.Month() == now.Month() && day == now.Day() {
			style = style.Foreground(theme.ColorToday).Underline(true)
		}
		cell := fmt.Sprintf("%2d", day)
		if color, ok := marked[day]; ok {
			cell = lipgloss.NewStyle().Bold(true).Foreground(theme.EventColor(color)).Render(fmt.Sprintf("%2d", day)) + "•"
		}
		b.WriteString(style.Render(cell))

		col++
		if col == 7 {
			rows = append(rows, b.String())
			b.Reset()
			col = 0
		}
	}
	if b.Len() > 0 {
		rows = append(rows, b.String())
	}
	return rows
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
