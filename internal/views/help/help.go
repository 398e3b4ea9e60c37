// Package help renders the key binding overlay from markdown.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/theme"
)

// Model caches the rendered overlay per width.
type Model struct {
	Style string // glamour standard style: "dark", "light", "notty"

	bindings []key.Binding
	width    int
	rendered string
}

// New creates an overlay listing bindings.
func New(style string, bindings []key.Binding) *Model {
	if style == "" {
		style = "dark"
	}
	return &Model{Style: style, bindings: bindings}
}

// Markdown returns the overlay source.
func (m *Model) Markdown() string {
	var b strings.Builder
	b.WriteString("# Atajos\n\n")
	b.WriteString("| Tecla | Acción |\n|---|---|\n")
	for _, kb := range m.bindings {
		h := kb.Help()
		if h.Key == "" {
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\nElegir un proveedor carga sus países; elegir un país carga los pedidos. ")
	b.WriteString("Con un único país disponible se selecciona solo.\n")
	return b.String()
}

// View renders the overlay. Rendering failures fall back to the raw
// markdown.
func (m *Model) View(width int) string {
	innerW := width - 8
	if innerW < 30 {
		innerW = 30
	}
	if m.rendered == "" || m.width != innerW {
		m.width = innerW
		m.rendered = m.render(innerW)
	}
	return lipgloss.NewStyle().
		Width(innerW+4).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(m.rendered + "\n" + theme.StyleDimmed.Render("esc: cerrar"))
}

func (m *Model) render(width int) string {
	src := m.Markdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.Style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimSpace(out)
}
