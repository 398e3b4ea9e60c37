package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noticeServer signs in "brand1" and then streams the given frames on
// /api/ws, one per write.
func noticeServer(t *testing.T, frames ...string) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "ok", Path: "/"})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
	mux.HandleFunc("/api/ws", func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err != nil || ck.Value != "ok" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		conn.ReadMessage()
	})
	return mux
}

func TestNotifierURLFollowsBaseAndPrefix(t *testing.T) {
	c, err := NewHTTPClient(Options{BaseURL: "https://orders.example/", APIPrefix: "/api"})
	require.NoError(t, err)
	assert.Equal(t, "wss://orders.example/api/ws", c.Notifier().URL())

	c, err = NewHTTPClient(Options{BaseURL: "http://127.0.0.1:8000"})
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:8000/ws", c.Notifier().URL())
}

func TestNotifierDeliversDatasetReloaded(t *testing.T) {
	c := newTestClient(t, noticeServer(t, `not json`, `{"type":"something_else"}`, `{"type":"dataset_reloaded","orders":12}`), "/api")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Login(ctx, "brand1", "secret"))

	n := c.Notifier()
	require.Equal(t, NoticesConnectedMsg{}, n.Listen(ctx)())
	assert.Equal(t, DatasetReloadedMsg{Orders: 12}, n.ReadLoop(ctx)())
}

func TestNotifierWithoutSessionIsUnauthenticated(t *testing.T) {
	c := newTestClient(t, noticeServer(t), "/api")
	msg := c.Notifier().Listen(context.Background())()

	d, ok := msg.(NoticesDisconnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.True(t, IsUnauthenticated(d.Err), "err = %v", d.Err)
}

func TestNotifierRefusedStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ws", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	c := newTestClient(t, mux, "/api")
	msg := c.Notifier().Listen(context.Background())()

	d, ok := msg.(NoticesDisconnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, d.Err, ErrNoticesRefused)
	assert.False(t, IsUnauthenticated(d.Err))
}

func TestNotifierRetriesUntilCancelled(t *testing.T) {
	c, err := NewHTTPClient(Options{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	n := c.Notifier()
	n.baseDelay = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.Nil(t, n.Listen(ctx)())
}

func TestNotifierCancelEndsReadLoop(t *testing.T) {
	c := newTestClient(t, noticeServer(t), "/api")
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Login(ctx, "brand1", "secret"))

	n := c.Notifier()
	require.Equal(t, NoticesConnectedMsg{}, n.Listen(ctx)())

	done := make(chan interface{}, 1)
	go func() { done <- n.ReadLoop(ctx)() }()
	cancel()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("read loop did not stop")
	}
}

func TestNotifierServerHangupDisconnects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ws", func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{}
		conn, err := up.Upgrade(w, r, nil)
		if err == nil {
			conn.Close()
		}
	})
	c := newTestClient(t, mux, "/api")
	ctx := context.Background()
	n := c.Notifier()
	require.Equal(t, NoticesConnectedMsg{}, n.Listen(ctx)())

	msg := n.ReadLoop(ctx)()
	d, ok := msg.(NoticesDisconnectedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Error(t, d.Err)
}
