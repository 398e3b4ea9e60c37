package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	reconnectBaseDelay = 1 * time.Second
	reconnectMaxDelay  = 30 * time.Second
	writeTimeout       = 10 * time.Second
	pongTimeout        = 60 * time.Second
	pingInterval       = 30 * time.Second
)

const noticeDatasetReloaded = "dataset_reloaded"

// ErrNoticesRefused means the backend answered the upgrade with an HTTP
// status other than a login redirect.
var ErrNoticesRefused = errors.New("notice stream refused")

// NoticesConnectedMsg is sent when the notice stream opens.
type NoticesConnectedMsg struct{}

// NoticesDisconnectedMsg is sent when the stream drops. An Err that is
// unauthenticated or ErrNoticesRefused will not heal by redialing.
type NoticesDisconnectedMsg struct{ Err error }

// DatasetReloadedMsg is sent when the backend swapped its order data.
type DatasetReloadedMsg struct{ Orders int }

type notice struct {
	Type   string `json:"type"`
	Orders int    `json:"orders"`
}

// Notifier follows the backend's /ws notice stream with the HTTP client's
// session cookie.
type Notifier struct {
	url       string
	dialer    *websocket.Dialer
	log       logrus.FieldLogger
	baseDelay time.Duration

	mu      sync.Mutex
	writeMu sync.Mutex // serialises pings
	conn    *websocket.Conn
	stop    context.CancelFunc // ends the active ping goroutine
}

// Notifier returns a notice stream client sharing c's cookie jar.
func (c *HTTPClient) Notifier() *Notifier {
	return &Notifier{
		url: "ws" + strings.TrimPrefix(c.baseURL, "http") + c.prefix + "/ws",
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
			Jar:              c.client.HTTPClient.Jar,
		},
		log:       c.log,
		baseDelay: reconnectBaseDelay,
	}
}

// URL returns the websocket endpoint.
func (n *Notifier) URL() string { return n.url }

// Listen returns a command that connects, retrying with backoff, and
// reports NoticesConnectedMsg. It returns nil once ctx is done.
func (n *Notifier) Listen(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		delay := n.baseDelay
		for {
			if ctx.Err() != nil {
				return nil
			}

			conn, resp, err := n.dialer.DialContext(ctx, n.url, nil)
			if err != nil {
				if resp != nil {
					return NoticesDisconnectedMsg{Err: refused(resp.StatusCode)}
				}
				n.log.WithError(err).WithField("retry_in", delay).Debug("notice dial failed")
				select {
				case <-ctx.Done():
					return nil
				case <-time.After(delay):
				}
				delay = min(delay*2, reconnectMaxDelay)
				continue
			}

			n.mu.Lock()
			if n.stop != nil {
				n.stop()
			}
			pingCtx, stop := context.WithCancel(ctx)
			n.conn = conn
			n.stop = stop
			n.mu.Unlock()

			go n.pingLoop(pingCtx, conn)
			n.log.Debug("notice stream connected")
			return NoticesConnectedMsg{}
		}
	}
}

// ReadLoop returns a command that blocks until the next notice. Start it
// after NoticesConnectedMsg and again after every notice.
func (n *Notifier) ReadLoop(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		n.mu.Lock()
		conn := n.conn
		n.mu.Unlock()
		if conn == nil {
			return NoticesDisconnectedMsg{Err: errors.New("no connection")}
		}

		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongTimeout))
			return nil
		})
		conn.SetReadDeadline(time.Now().Add(pongTimeout))

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				n.mu.Lock()
				if n.conn == conn {
					n.conn = nil
				}
				n.mu.Unlock()
				conn.Close()
				if ctx.Err() != nil {
					return nil
				}
				return NoticesDisconnectedMsg{Err: err}
			}

			var msg notice
			if err := json.Unmarshal(data, &msg); err != nil {
				continue
			}
			switch msg.Type {
			case noticeDatasetReloaded:
				return DatasetReloadedMsg{Orders: msg.Orders}
			}
		}
	}
}

func refused(status int) error {
	switch {
	case status == http.StatusUnauthorized, status >= 300 && status < 400:
		return unauthenticated("notices", status)
	}
	return fmt.Errorf("%w (status %d)", ErrNoticesRefused, status)
}

// pingLoop keeps conn alive and closes it when ctx ends, which unblocks
// ReadLoop.
func (n *Notifier) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			conn.Close()
			return
		case <-ticker.C:
			n.mu.Lock()
			current := n.conn
			n.mu.Unlock()
			if current != conn {
				return
			}
			n.writeMu.Lock()
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			n.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
