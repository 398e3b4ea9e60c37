package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exportar ics")),
		key.NewBinding(key.WithKeys("z")), // no help, not listed
	}
}

func TestMarkdownListsBindings(t *testing.T) {
	md := New("notty", bindings()).Markdown()
	assert.Contains(t, md, "| `r` | recargar |")
	assert.Contains(t, md, "| `x` | exportar ics |")
	assert.NotContains(t, md, "`z`")
}

func TestViewRenders(t *testing.T) {
	m := New("notty", bindings())
	v := m.View(80)
	assert.Contains(t, v, "recargar")
	assert.Contains(t, v, "Atajos")
	assert.Contains(t, v, "esc: cerrar")
}

func TestViewCachesPerWidth(t *testing.T) {
	m := New("notty", bindings())
	m.View(80)
	first := m.rendered
	m.View(80)
	assert.Equal(t, first, m.rendered)
	assert.Equal(t, 72, m.width)

	m.View(100)
	assert.Equal(t, 92, m.width)
}
