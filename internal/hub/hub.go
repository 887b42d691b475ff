package hub

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"chessrelay/internal/matchmaker"
	"chessrelay/internal/rules"
	"chessrelay/internal/session"
	"chessrelay/pkg/types"
)

type Msg interface{ isHubMsg() }

// Register adds a connection to the live set.
type Register struct {
	Conn *Conn
}

// Unregister drops a connection: it leaves the live set and, if it was
// the waiting occupant, the slot is cleared. A session it belonged to
// is left as-is; its opponent's moves simply stop being answered.
type Unregister struct {
	Conn *Conn
}

// Inbound carries one raw protocol frame read off a connection.
type Inbound struct {
	Conn *Conn
	Data []byte
}

// Stats asks for a snapshot of the hub's bookkeeping.
type Stats struct {
	Reply chan View
}

type Shutdown struct{}

func (Register) isHubMsg()   {}
func (Unregister) isHubMsg() {}
func (Inbound) isHubMsg()    {}
func (Stats) isHubMsg()      {}
func (Shutdown) isHubMsg()   {}

type View struct {
	NumConns    int
	NumSessions int
	Waiting     bool
}

// Hub owns the live connection set, the matchmaker's waiting slot, and
// the connection-to-session index. A single goroutine drains the inbox
// and processes each message to completion, so slot check-and-fill and
// session move handling are atomic without locks.
type Hub struct {
	inbox    chan Msg
	conns    map[string]*Conn
	sessions map[string]*session.Session // conn ID -> owning session
	mm       *matchmaker.Matchmaker
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(parent context.Context, auth rules.Authority, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan Msg, 64),
		conns:    make(map[string]*Conn),
		sessions: make(map[string]*session.Session),
		mm:       matchmaker.New(auth, log),
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- Msg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case Register:
				h.conns[msg.Conn.ID()] = msg.Conn
				h.log.Debug("connection registered", zap.String("conn", msg.Conn.ID()))

			case Unregister:
				delete(h.conns, msg.Conn.ID())
				h.mm.Forget(msg.Conn.ID())
				h.log.Debug("connection removed", zap.String("conn", msg.Conn.ID()))

			case Inbound:
				h.route(msg.Conn, msg.Data)

			case Stats:
				msg.Reply <- h.view()

			case Shutdown:
				h.cancel()
				return
			}
		}
	}
}

// route classifies one frame. Anything that cannot be routed (bad
// JSON, unknown type, move from a connection with no session) is
// dropped without a reply.
func (h *Hub) route(c *Conn, data []byte) {
	var cm types.ClientMessage
	if err := json.Unmarshal(data, &cm); err != nil {
		h.log.Debug("malformed frame dropped", zap.String("conn", c.ID()), zap.Error(err))
		return
	}

	switch cm.Type {
	case types.MsgJoin:
		if s, ok := h.sessions[c.ID()]; ok && !s.Finished() {
			return // already seated
		}
		if s := h.mm.OnJoin(c); s != nil {
			h.sessions[s.First().ID()] = s
			h.sessions[s.Second().ID()] = s
		}

	case types.MsgMove:
		s := h.sessions[c.ID()]
		if s == nil || cm.Payload == nil {
			return
		}
		s.OnMove(c, cm.Payload.Move)

	default:
		h.log.Debug("unknown message type dropped",
			zap.String("conn", c.ID()),
			zap.String("type", cm.Type))
	}
}

func (h *Hub) view() View {
	distinct := make(map[*session.Session]struct{}, len(h.sessions))
	for _, s := range h.sessions {
		distinct[s] = struct{}{}
	}
	return View{
		NumConns:    len(h.conns),
		NumSessions: len(distinct),
		Waiting:     h.mm.HasWaiting(),
	}
}
