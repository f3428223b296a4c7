package api

import (
	"net/http"
	"sync"

	xlogger "AlphaForge/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Feed pushes every scored MarketPacket to websocket subscribers. This
// is the delivery channel for the downstream decision collaborator; the
// engine itself stays transport-free.
type Feed struct {
	logger   *xlogger.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewFeed(logger *xlogger.Logger) *Feed {
	return &Feed{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Handle upgrades the request and keeps the connection registered until
// the peer goes away. Subscribers are write-only; inbound frames are
// drained and discarded.
func (f *Feed) Handle(c echo.Context) error {
	conn, err := f.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.conns[conn] = struct{}{}
	n := len(f.conns)
	f.mu.Unlock()
	f.logger.Info("feed subscriber connected", xlogger.Int("subscribers", n))

	go f.drain(conn)
	return nil
}

// Broadcast sends v as JSON to every subscriber, dropping connections
// that fail to accept the write.
func (f *Feed) Broadcast(v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteJSON(v); err != nil {
			_ = conn.Close()
			delete(f.conns, conn)
		}
	}
}

// Close shuts down every subscriber connection.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		_ = conn.Close()
		delete(f.conns, conn)
	}
}

func (f *Feed) drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			if _, ok := f.conns[conn]; ok {
				_ = conn.Close()
				delete(f.conns, conn)
			}
			f.mu.Unlock()
			return
		}
	}
}
