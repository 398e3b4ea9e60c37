package debug

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestAddEntry(t *testing.T) {
	l := NewLog(logrus.DebugLevel)
	l.Add("info", "signed in")
	entries := l.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Kind != "info" {
		t.Errorf("expected kind 'info', got %q", entries[0].Kind)
	}
}

func TestMaxEntries(t *testing.T) {
	l := NewLog(logrus.DebugLevel)
	for i := 0; i < maxEntries+50; i++ {
		l.Add("dbg", "msg")
	}
	if l.Len() != maxEntries {
		t.Errorf("expected %d entries, got %d", maxEntries, l.Len())
	}
}

func TestHookCapturesFields(t *testing.T) {
	l := NewLog(logrus.DebugLevel)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	logger.AddHook(l)

	logger.WithFields(logrus.Fields{"provider": "P1", "gen": 3}).Debug("countries applied")
	logger.Error("fetch failed")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Kind != "dbg" || entries[0].Message != "countries applied gen=3 provider=P1" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Kind != "err" {
		t.Errorf("expected kind 'err', got %q", entries[1].Kind)
	}
}

func TestHookLevels(t *testing.T) {
	l := NewLog(logrus.WarnLevel)
	for _, lvl := range l.Levels() {
		if lvl > logrus.WarnLevel {
			t.Errorf("level %s should not be captured", lvl)
		}
	}
	if len(l.Levels()) != 4 {
		t.Errorf("expected panic..warn, got %v", l.Levels())
	}
}

func TestScrollUpDown(t *testing.T) {
	m := New(NewLog(logrus.DebugLevel))
	for i := 0; i < 20; i++ {
		m.Log.Add("dbg", "msg")
	}

	m.ScrollUp(5)
	if m.Offset != 5 {
		t.Errorf("expected offset 5, got %d", m.Offset)
	}

	m.ScrollDown(3)
	if m.Offset != 2 {
		t.Errorf("expected offset 2, got %d", m.Offset)
	}

	m.ScrollDown(10) // shouldn't go below 0
	if m.Offset != 0 {
		t.Errorf("expected offset 0, got %d", m.Offset)
	}
}

func TestScrollUpCapped(t *testing.T) {
	m := New(NewLog(logrus.DebugLevel))
	for i := 0; i < 5; i++ {
		m.Log.Add("dbg", "msg")
	}
	m.ScrollUp(100)
	if m.Offset != 4 { // max is len-1
		t.Errorf("expected offset 4, got %d", m.Offset)
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(NewLog(logrus.DebugLevel))
	v := m.View(80, 20)
	if !strings.Contains(v, "Sin actividad") {
		t.Error("empty view should show the no-activity message")
	}
}

func TestViewWithEntries(t *testing.T) {
	m := New(NewLog(logrus.DebugLevel))
	m.Log.Add("info", "connected")
	m.Log.Add("err", "timeout")
	v := m.View(80, 20)
	if !strings.Contains(v, "connected") {
		t.Error("view should contain 'connected'")
	}
	if !strings.Contains(v, "timeout") {
		t.Error("view should contain 'timeout'")
	}
}
