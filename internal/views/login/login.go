// Package login is the sign-in surface. It collects credentials and emits a
// SubmitMsg; the surrounding app performs the actual login.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/theme"
)

// ExpiredText is shown when the app lands here because a fetch reported
// an expired session.
const ExpiredText = "Sesión expirada. Vuelva a ingresar."

// BadCredentialsText is shown when the server rejects the credentials.
const BadCredentialsText = "Credenciales incorrectas"

// SubmitMsg carries the entered credentials.
type SubmitMsg struct {
	Username string
	Password string
}

const (
	fieldUser = iota
	fieldPassword
)

// Model holds the form state.
type Model struct {
	Width int

	user     textinput.Model
	password textinput.Model
	focus    int
	notice   string
	err      string
	busy     bool
}

// New creates a form with the username prefilled.
func New(username string) Model {
	u := textinput.New()
	u.Prompt = "Usuario:     "
	u.Placeholder = "usuario"
	u.CharLimit = 64
	u.SetValue(username)

	p := textinput.New()
	p.Prompt = "Contraseña:  "
	p.Placeholder = "contraseña"
	p.CharLimit = 128
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	m := Model{user: u, password: p}
	if username != "" {
		m.focus = fieldPassword
	}
	m.applyFocus()
	return m
}

func (m *Model) applyFocus() {
	if m.focus == fieldUser {
		m.user.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.user.Blur()
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// SetNotice shows a blocking notice above the form.
func (m *Model) SetNotice(text string) { m.notice = text }

// SetError shows an error below the form and clears the password.
func (m *Model) SetError(text string) {
	m.err = text
	m.busy = false
	m.password.SetValue("")
	m.focus = fieldPassword
	m.applyFocus()
}

// SetBusy marks a submission as in flight; input is ignored meanwhile.
func (m *Model) SetBusy(busy bool) { m.busy = busy }

// Busy reports whether a submission is in flight.
func (m Model) Busy() bool { return m.busy }

// Username returns the entered username.
func (m Model) Username() string { return strings.TrimSpace(m.user.Value()) }

// Update handles form input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			m.applyFocus()
			return m, nil
		case "enter":
			if m.focus == fieldUser {
				m.focus = fieldPassword
				m.applyFocus()
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldUser {
		m.user, cmd = m.user.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	user, pass := m.Username(), m.password.Value()
	if user == "" || pass == "" {
		m.err = "Ingrese usuario y contraseña"
		return m, nil
	}
	m.err = ""
	m.busy = true
	return m, func() tea.Msg { return SubmitMsg{Username: user, Password: pass} }
}

// View renders the form.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}
	if width > 64 {
		width = 64
	}

	lines := []string{theme.StyleHeader.Render("Pedidos · Ingresar"), ""}
	if m.notice != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWarning).Render(m.notice), "")
	}
	lines = append(lines, m.user.View(), m.password.View(), "")
	switch {
	case m.busy:
		lines = append(lines, theme.StyleDimmed.Render("Ingresando..."))
	case m.err != "":
		lines = append(lines, theme.StyleError.Render(m.err))
	default:
		lines = append(lines, theme.StyleDimmed.Render("enter: ingresar  tab: cambiar campo  ctrl+c: salir"))
	}

	return theme.Panel(width-4, true).Render(strings.Join(lines, "\n"))
}
