package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sainthonore/pedidos/internal/auth"
	"github.com/sirupsen/logrus"
)

// NoticeDatasetReloaded tells clients the order data changed under them.
const NoticeDatasetReloaded = "dataset_reloaded"

const (
	noticeWriteTimeout = 10 * time.Second
	noticeBuffer       = 8
)

// Notice is pushed to every connected client. It carries no order data;
// clients refetch through the scoped endpoints.
type Notice struct {
	Type   string `json:"type"`
	Orders int    `json:"orders,omitempty"`
}

type client struct {
	conn *websocket.Conn
	b    *Broadcaster
	user string
	send chan []byte
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(noticeWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.b.RemoveClient(c)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(noticeWriteTimeout))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// Broadcaster fans notices out to the connected websocket clients.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[*client]bool
	closed  bool
	log     logrus.FieldLogger
}

func NewBroadcaster(log logrus.FieldLogger) *Broadcaster {
	return &Broadcaster{
		clients: make(map[*client]bool),
		log:     log,
	}
}

// AddClient registers conn and starts its writer. It returns nil once the
// broadcaster is closed.
func (b *Broadcaster) AddClient(conn *websocket.Conn, user string) *client {
	c := &client{conn: conn, b: b, user: user, send: make(chan []byte, noticeBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return nil
	}
	b.clients[c] = true
	b.mu.Unlock()

	go c.writePump()
	return c
}

func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
	}
	b.mu.Unlock()
}

// DatasetReloaded announces that the store now holds n orders.
func (b *Broadcaster) DatasetReloaded(n int) {
	b.broadcast(Notice{Type: NoticeDatasetReloaded, Orders: n})
}

func (b *Broadcaster) broadcast(n Notice) {
	data, err := json.Marshal(n)
	if err != nil {
		b.log.WithError(err).Error("notice marshal failed")
		return
	}

	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			b.log.WithField("user", c.user).Warn("notice client too slow, disconnecting")
			b.RemoveClient(c)
		}
	}
	b.log.WithFields(logrus.Fields{"type": n.Type, "orders": n.Orders, "clients": len(clients)}).Info("notice sent")
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close says goodbye to every client and refuses new ones. Hijacked
// connections outlive http.Server.Shutdown, so this runs after it.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	for c := range b.clients {
		delete(b.clients, c)
		close(c.send)
	}
	b.mu.Unlock()
}

func (s *Server) handleNotices(w http.ResponseWriter, r *http.Request, acct auth.Account) {
	upgrader := websocket.Upgrader{CheckOrigin: sameOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		entry(r, s.log).WithError(err).Debug("notice upgrade failed")
		return
	}
	log := entry(r, s.log).WithField("user", acct.Username)
	c := s.notices.AddClient(conn, acct.Username)
	if c == nil {
		return
	}
	log.Debug("notice client connected")

	// Clients never send data; reading only serves control frames and
	// notices the hangup.
	go func() {
		defer func() {
			s.notices.RemoveClient(c)
			log.Debug("notice client disconnected")
		}()
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// sameOrigin admits clients without an Origin header (the TUI) and
// browsers on the serving host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Host == r.Host
}
