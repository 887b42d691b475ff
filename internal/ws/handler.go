package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"chessrelay/internal/hub"
)

const (
	outboxSize   = 16
	writeTimeout = 3 * time.Second
)

// Handler upgrades the request and bridges the socket to the hub: a
// reader loop forwards raw frames to the hub inbox, a writer goroutine
// drains the connection's outbox back onto the socket.
func Handler(h *hub.Hub, log *zap.Logger, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer c.Close(websocket.StatusNormalClosure, "bye")

		conn := hub.NewConn(randID(8), outboxSize)
		h.Inbox() <- hub.Register{Conn: conn}
		defer func() { h.Inbox() <- hub.Unregister{Conn: conn} }()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case <-writeCtx.Done():
					return
				case msg := <-conn.Outbox():
					payload, err := json.Marshal(msg)
					if err != nil {
						continue
					}
					ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
					err = c.Write(ctx, websocket.MessageText, payload)
					cancel()
					if err != nil {
						return
					}
				}
			}
		}()

		for {
			_, data, err := c.Read(r.Context())
			if err != nil {
				// Clean close, going-away, and everything else all end
				// the same way: Unregister runs in the defer.
				return
			}
			h.Inbox() <- hub.Inbound{Conn: conn, Data: data}
		}
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
