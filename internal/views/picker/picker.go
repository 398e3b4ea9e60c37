// Package picker provides a single-choice option list with a placeholder
// row and an enabled flag. It is used for the provider and country filters.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/theme"
)

// DefaultPlaceholder is the first row of every list, meaning "nothing".
const DefaultPlaceholder = "— Elegir —"

// Model holds the list state. Row 0 is the placeholder; row i+1 is items[i].
type Model struct {
	Title       string
	Placeholder string
	Width       int
	Height      int

	items    []string
	cursor   int
	selected string
	enabled  bool
}

// New creates an empty, disabled list.
func New(title string) *Model {
	return &Model{
		Title:       title,
		Placeholder: DefaultPlaceholder,
		Height:      10,
	}
}

// Reset empties the list back to its placeholder.
func (m *Model) Reset() {
	m.items = nil
	m.cursor = 0
	m.selected = ""
}

// SetOptions replaces the items, keeping server order.
func (m *Model) SetOptions(ids []string) {
	m.items = append([]string(nil), ids...)
	m.cursor = 0
	if m.selected != "" && m.indexOf(m.selected) < 0 {
		m.selected = ""
	}
}

// Select marks id as the chosen item and moves the cursor onto it. An
// unknown id selects the placeholder.
func (m *Model) Select(id string) {
	i := m.indexOf(id)
	if i < 0 {
		m.selected = ""
		m.cursor = 0
		return
	}
	m.selected = id
	m.cursor = i + 1
}

// SetEnabled toggles whether the list accepts input.
func (m *Model) SetEnabled(enabled bool) { m.enabled = enabled }

// Enabled reports whether the list accepts input.
func (m *Model) Enabled() bool { return m.enabled }

// Items returns a copy of the options.
func (m *Model) Items() []string { return append([]string(nil), m.items...) }

// Selected returns the chosen item, "" for the placeholder.
func (m *Model) Selected() string { return m.selected }

// Current returns the item under the cursor, "" on the placeholder row.
func (m *Model) Current() string {
	if m.cursor == 0 || m.cursor > len(m.items) {
		return ""
	}
	return m.items[m.cursor-1]
}

// MoveDown moves the cursor one row down, wrapping.
func (m *Model) MoveDown() {
	if !m.enabled {
		return
	}
	m.cursor = (m.cursor + 1) % (len(m.items) + 1)
}

// MoveUp moves the cursor one row up, wrapping.
func (m *Model) MoveUp() {
	if !m.enabled {
		return
	}
	rows := len(m.items) + 1
	m.cursor = (m.cursor - 1 + rows) % rows
}

func (m *Model) indexOf(id string) int {
	for i, it := range m.items {
		if it == id {
			return i
		}
	}
	return -1
}

// View renders the list inside a panel.
func (m *Model) View(focused bool) string {
	width := m.Width
	if width < 20 {
		width = 20
	}
	innerW := width - 4

	title := theme.StyleHeader.Render(m.Title)
	if !m.enabled {
		title = theme.Heading(title, "(no disponible)", innerW)
	}

	rows := make([]string, 0, len(m.items)+1)
	rows = append(rows, m.renderRow(0, m.Placeholder, m.selected == "", focused, innerW))
	for i, it := range m.items {
		rows = append(rows, m.renderRow(i+1, it, it == m.selected, focused, innerW))
	}

	// Keep the cursor in view once the list outgrows the panel.
	visible := m.Height
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}
	body := strings.Join(rows[start:end], "\n")
	if end < len(rows) {
		body += "\n" + theme.StyleDimmed.Render(fmt.Sprintf("  ↓ %d más", len(rows)-end))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return theme.Panel(innerW, focused && m.enabled).Render(content)
}

func (m *Model) renderRow(row int, label string, chosen, focused bool, width int) string {
	prefix := "  "
	if focused && m.enabled && row == m.cursor {
		prefix = "> "
	}
	mark := "  "
	if chosen {
		mark = "● "
	}
	if len([]rune(label)) > width-4 && width > 8 {
		label = string([]rune(label)[:width-7]) + "..."
	}

	style := lipgloss.NewStyle()
	switch {
	case !m.enabled:
		style = theme.StyleDimmed
	case chosen:
		style = theme.StyleSelected
	case row == 0:
		style = theme.StyleDimmed
	}
	return prefix + style.Render(mark+label)
}
