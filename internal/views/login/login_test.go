package login

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, t tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: t})
}

func TestSubmitEmitsCredentials(t *testing.T) {
	m := New("")
	m = typeText(m, "chanel")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd, "enter on username moves to password")

	m = typeText(m, "s3cret")
	m, cmd = press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Busy())
	assert.Equal(t, SubmitMsg{Username: "chanel", Password: "s3cret"}, cmd())
}

func TestPrefilledUserFocusesPassword(t *testing.T) {
	m := New("dior")
	m = typeText(m, "pw")
	_, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Username: "dior", Password: "pw"}, cmd())
}

func TestEmptyFieldsAreRejected(t *testing.T) {
	m := New("dior")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.Busy())
	assert.Contains(t, m.View(), "Ingrese usuario")
}

func TestBusyIgnoresInput(t *testing.T) {
	m := New("dior")
	m.SetBusy(true)
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Ingresando")
}

func TestSetErrorClearsPassword(t *testing.T) {
	m := New("dior")
	m = typeText(m, "wrong")
	m, _ = press(m, tea.KeyEnter)
	m.SetError(BadCredentialsText)

	assert.False(t, m.Busy())
	assert.Contains(t, m.View(), BadCredentialsText)
	_, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd, "password was cleared")
}

func TestNoticeIsShown(t *testing.T) {
	m := New("")
	m.SetNotice(ExpiredText)
	assert.Contains(t, m.View(), "Sesión expirada")
}
