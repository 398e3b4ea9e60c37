package status

import (
	"testing"

	"github.com/sainthonore/pedidos/internal/cascade"
	"github.com/sainthonore/pedidos/internal/filter"
	"github.com/stretchr/testify/assert"
)

func TestViewShowsSelectionAndLink(t *testing.T) {
	m := New()
	m.Width = 200
	m.User = "chanel"
	m.Selection = filter.Selection{Provider: "Proveedor1", Country: "CHILE"}
	m.Link = "http://localhost:8000/api/ics?country=CHILE&provider=Proveedor1"

	v := m.View()
	assert.Contains(t, v, "chanel")
	assert.Contains(t, v, "Proveedor1 / CHILE")
	assert.Contains(t, v, "ics?country=CHILE")
}

func TestViewWithoutSession(t *testing.T) {
	m := New()
	assert.Contains(t, m.View(), "sin sesión")
}

func TestNoticeLifecycle(t *testing.T) {
	m := New()
	m.Width = 200
	m.SetNotice(cascade.NoticeMsg{Level: cascade.NoticeError, Text: "No se pudo cargar países"})
	assert.Contains(t, m.View(), "No se pudo cargar países")

	m.ClearNotice()
	assert.Empty(t, m.Notice().Text)
	assert.NotContains(t, m.View(), "No se pudo")
}

func TestBusyIndicator(t *testing.T) {
	m := New()
	m.Width = 200
	assert.NotContains(t, m.View(), "cargando")
	m.Busy = true
	assert.Contains(t, m.View(), "cargando")
}
