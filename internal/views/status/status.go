package status

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/cascade"
	"github.com/sainthonore/pedidos/internal/filter"
	"github.com/sainthonore/pedidos/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	User      string
	Selection filter.Selection
	Link      string
	Busy      bool
	Width     int

	notice  cascade.NoticeMsg
	spinner spinner.Model
}

// New creates a status bar model.
func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorFocus)
	return Model{spinner: sp}
}

// Tick starts the spinner animation.
func (m Model) Tick() tea.Cmd { return m.spinner.Tick }

// Update advances the spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// SetNotice shows a notice until cleared or replaced.
func (m *Model) SetNotice(n cascade.NoticeMsg) { m.notice = n }

// ClearNotice removes the current notice.
func (m *Model) ClearNotice() { m.notice = cascade.NoticeMsg{} }

// Notice returns the current notice; Text is empty when there is none.
func (m Model) Notice() cascade.NoticeMsg { return m.notice }

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")

	user := lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render("● " + m.User)
	if m.User == "" {
		user = theme.StyleDimmed.Render("○ sin sesión")
	}

	sel := theme.StyleDimmed.Render("sin filtro")
	switch {
	case m.Selection.Complete():
		sel = m.Selection.Provider + " / " + m.Selection.Country
	case m.Selection.Provider != "":
		sel = m.Selection.Provider + " / " + theme.StyleDimmed.Render("país?")
	}

	content := user + sep + sel
	if m.Busy {
		content += sep + m.spinner.View() + " cargando"
	}
	if m.Link != "" {
		content += sep + theme.StyleLink.Render(m.Link)
	}
	if m.notice.Text != "" {
		style := lipgloss.NewStyle().Foreground(theme.ColorAccent)
		if m.notice.Level == cascade.NoticeError {
			style = theme.StyleError
		}
		content += sep + style.Render(m.notice.Text)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
