package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialNotices(t *testing.T, srv *httptest.Server, path, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	header := http.Header{}
	if token != "" {
		header.Set("Cookie", (&http.Cookie{Name: sessionCookie, Value: token}).String())
	}
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	return websocket.DefaultDialer.Dial(url, header)
}

func TestNoticesRequireSession(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	_, resp, err := dialNotices(t, srv, "/api/ws", "")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 0, s.Notices().ClientCount())
}

func TestDatasetReloadedReachesEveryClient(t *testing.T) {
	s, signer := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()
	defer s.Notices().Close()

	a, _, err := dialNotices(t, srv, "/api/ws", sign(t, signer, "chanel"))
	require.NoError(t, err)
	defer a.Close()
	b, _, err := dialNotices(t, srv, "/ws", sign(t, signer, "dior"))
	require.NoError(t, err)
	defer b.Close()

	require.Eventually(t, func() bool { return s.Notices().ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)
	s.Notices().DatasetReloaded(7)

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var n Notice
		require.NoError(t, conn.ReadJSON(&n))
		assert.Equal(t, Notice{Type: NoticeDatasetReloaded, Orders: 7}, n)
	}
}

func TestNoticeClientRemovedOnHangup(t *testing.T) {
	s, signer := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn, _, err := dialNotices(t, srv, "/api/ws", sign(t, signer, "chanel"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.Notices().ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return s.Notices().ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcasterCloseSaysGoodbye(t *testing.T) {
	s, signer := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn, _, err := dialNotices(t, srv, "/api/ws", sign(t, signer, "chanel"))
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.Notices().ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	s.Notices().Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "err = %v", err)

	// Late arrivals are turned away.
	late, _, err := dialNotices(t, srv, "/api/ws", sign(t, signer, "chanel"))
	if err == nil {
		late.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err = late.ReadMessage()
		late.Close()
	}
	assert.Error(t, err)
	assert.Equal(t, 0, s.Notices().ClientCount())
}

func TestSameOrigin(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://orders.local/ws", nil)
	assert.True(t, sameOrigin(r))

	r.Header.Set("Origin", "http://orders.local")
	assert.True(t, sameOrigin(r))

	r.Header.Set("Origin", "http://evil.example")
	assert.False(t, sameOrigin(r))
}
