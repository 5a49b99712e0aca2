package events_get

import (
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"courier-sync/internal/handlers/rest/converters"
	"courier-sync/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: isLocalOrigin,
}

type Handler struct {
	log handlerLogger
	hub Hub
}

func New(log handlerLogger, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
	}
}

// ServeHTTP upgrades to a websocket and streams hub events until the client
// goes away or the server shuts down. Client messages are ignored.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.NewField("error", err))
		return
	}
	defer conn.Close()

	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	client := &client{done: make(chan struct{})}
	go client.readLoop(conn)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(writeWait))
			return
		case <-client.done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(converters.EventToDTO(event)); err != nil {
				h.log.Warn("websocket write failed", logger.NewField("error", err))
				return
			}
		}
	}
}

type client struct {
	once sync.Once
	done chan struct{}
}

func (c *client) safeClose() {
	c.once.Do(func() {
		close(c.done)
	})
}

// readLoop keeps control frames flowing and notices when the peer leaves.
func (c *client) readLoop(conn *websocket.Conn) {
	defer c.safeClose()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// isLocalOrigin admits requests without an Origin header and pages served from
// the loopback interface.
func isLocalOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
