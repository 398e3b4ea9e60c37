// Package debug provides a scrollable activity log overlay fed by logrus.
package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sainthonore/pedidos/internal/theme"
	"github.com/sirupsen/logrus"
)

const maxEntries = 200

// Entry is a single log line.
type Entry struct {
	Time    time.Time
	Kind    string // "dbg", "info", "warn", "err"
	Message string
}

// Log is a bounded in-memory log. It is a logrus hook, so gateway and
// controller logging shows up in the overlay. Safe for concurrent use:
// fetch commands log from their own goroutines.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	levels  []logrus.Level
}

// NewLog creates a log that captures entries at level or more severe.
func NewLog(level logrus.Level) *Log {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= level {
			levels = append(levels, l)
		}
	}
	return &Log{levels: levels}
}

// Add appends an entry and caps the buffer.
func (l *Log) Add(kind, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Time: time.Now(), Kind: kind, Message: message})
	if len(l.entries) > maxEntries {
		l.entries = l.entries[len(l.entries)-maxEntries:]
	}
}

// Entries returns a snapshot of the buffer, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of buffered entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Levels implements logrus.Hook.
func (l *Log) Levels() []logrus.Level { return l.levels }

// Fire implements logrus.Hook.
func (l *Log) Fire(e *logrus.Entry) error {
	l.Add(levelKind(e.Level), formatEntry(e))
	return nil
}

func levelKind(level logrus.Level) string {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "dbg"
	case logrus.InfoLevel:
		return "info"
	case logrus.WarnLevel:
		return "warn"
	default:
		return "err"
	}
}

// formatEntry renders the message followed by its fields in key order.
func formatEntry(e *logrus.Entry) string {
	if len(e.Data) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	return b.String()
}

// Model is the overlay view over a Log.
type Model struct {
	Log    *Log
	Offset int // scroll offset (from bottom)
}

// New creates an overlay over log.
func New(log *Log) Model {
	return Model{Log: log}
}

// ScrollUp moves the viewport up.
func (m *Model) ScrollUp(n int) {
	m.Offset += n
	max := m.Log.Len() - 1
	if max < 0 {
		max = 0
	}
	if m.Offset > max {
		m.Offset = max
	}
}

// ScrollDown moves the viewport down.
func (m *Model) ScrollDown(n int) {
	m.Offset -= n
	if m.Offset < 0 {
		m.Offset = 0
	}
}

// panelStyle returns the shared border style for the debug overlay.
func panelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder)
}

// View renders the log as an overlay panel.
func (m Model) View(width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}
	visibleLines := height - 6
	if visibleLines < 3 {
		visibleLines = 3
	}

	entries := m.Log.Entries()
	title := theme.StyleHeader.Render(" REGISTRO ")
	help := theme.StyleDimmed.Render(fmt.Sprintf("j/k:desplazar  esc:cerrar  %d entradas", len(entries)))

	if len(entries) == 0 {
		body := theme.StyleDimmed.Render("  Sin actividad registrada.")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", help)
		return panelStyle(innerW).Render(content)
	}

	offset := m.Offset
	if offset > len(entries)-1 {
		offset = len(entries) - 1
	}
	end := len(entries) - offset
	start := end - visibleLines
	if start < 0 {
		start = 0
	}

	var lines []string
	for i := start; i < end; i++ {
		e := entries[i]
		tsStr := theme.StyleDimmed.Render(e.Time.Format("15:04:05.000"))
		kindStr := lipgloss.NewStyle().Foreground(kindToColor(e.Kind)).Width(5).Render(e.Kind)
		msgStr := e.Message
		if len(msgStr) > innerW-20 && innerW > 23 {
			msgStr = msgStr[:innerW-23] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", tsStr, kindStr, msgStr))
	}

	body := strings.Join(lines, "\n")
	scrollIndicator := ""
	if offset > 0 {
		scrollIndicator = theme.StyleDimmed.Render(fmt.Sprintf(" ↓ %d más", offset))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, scrollIndicator, help)
	return panelStyle(innerW).Render(content)
}

func kindToColor(kind string) lipgloss.Color {
	switch kind {
	case "err":
		return theme.ColorDanger
	case "warn":
		return theme.ColorWarning
	case "info":
		return theme.ColorAccent
	default:
		return theme.ColorDimmed
	}
}
