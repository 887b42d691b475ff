package matchmaker

import (
	"go.uber.org/zap"

	"chessrelay/internal/rules"
	"chessrelay/internal/session"
)

// Matchmaker holds at most one waiting participant and pairs strictly
// FIFO: the new arrival plays second, the waiter plays first. Calls are
// serialized by the hub loop.
type Matchmaker struct {
	waiting session.Participant
	auth    rules.Authority
	log     *zap.Logger
}

func New(auth rules.Authority, log *zap.Logger) *Matchmaker {
	return &Matchmaker{auth: auth, log: log}
}

// OnJoin parks p when the slot is empty, otherwise pairs p with the
// waiting participant and returns the new session. A duplicate join
// from the waiter itself is a no-op; this operation cannot fail.
func (m *Matchmaker) OnJoin(p session.Participant) *session.Session {
	if m.waiting == nil {
		m.waiting = p
		m.log.Debug("parked in waiting slot", zap.String("conn", p.ID()))
		return nil
	}
	if m.waiting.ID() == p.ID() {
		return nil
	}
	w := m.waiting
	m.waiting = nil
	return session.New(w, p, m.auth, m.log)
}

// HasWaiting reports whether the slot is occupied.
func (m *Matchmaker) HasWaiting() bool { return m.waiting != nil }

// Forget clears the slot if the given connection occupies it, so a
// disconnecting waiter can never be paired.
func (m *Matchmaker) Forget(id string) {
	if m.waiting != nil && m.waiting.ID() == id {
		m.waiting = nil
	}
}
