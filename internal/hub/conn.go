package hub

import "chessrelay/pkg/types"

// Conn is the hub-side handle to one participant: a stable identity
// plus a buffered outbox the transport drains. Send never blocks; if
// the recipient is too slow to keep its outbox drained, the message is
// dropped rather than stalling the hub loop.
type Conn struct {
	id     string
	outbox chan types.ServerMessage
}

func NewConn(id string, buffer int) *Conn {
	return &Conn{id: id, outbox: make(chan types.ServerMessage, buffer)}
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) Send(msg types.ServerMessage) {
	select {
	case c.outbox <- msg:
	default:
		// Slow consumer; fire-and-forget means this frame is lost.
	}
}

func (c *Conn) Outbox() <-chan types.ServerMessage { return c.outbox }
