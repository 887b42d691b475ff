package session

import (
	"time"

	"go.uber.org/zap"

	"chessrelay/internal/rules"
	"chessrelay/pkg/types"
)

// Participant is a non-owning handle to one player's connection. Send
// is fire-and-forget: it never blocks and never reports failure.
type Participant interface {
	ID() string
	Send(msg types.ServerMessage)
}

type Status int

const (
	StatusActive Status = iota
	StatusFinished
)

// Side identifiers as they appear on the wire. First moves on even
// plies, second on odd plies.
const (
	SideFirst  = "first"
	SideSecond = "second"
)

// Session owns one paired game: whose move it is, the board, and the
// finished flag. All calls happen on the hub's single message loop, so
// there is no locking here.
type Session struct {
	first     Participant
	second    Participant
	auth      rules.Authority
	board     rules.Board
	plyCount  int
	status    Status
	startedAt time.Time
	log       *zap.Logger
}

// New pairs two participants and tells each its side. The previously
// waiting participant is always first.
func New(first, second Participant, auth rules.Authority, log *zap.Logger) *Session {
	s := &Session{
		first:     first,
		second:    second,
		auth:      auth,
		board:     auth.NewBoard(),
		status:    StatusActive,
		startedAt: time.Now(),
		log:       log,
	}
	first.Send(types.ServerMessage{
		Type:    types.MsgJoinAssigned,
		Payload: types.ServerPayload{Side: SideFirst},
	})
	second.Send(types.ServerMessage{
		Type:    types.MsgJoinAssigned,
		Payload: types.ServerPayload{Side: SideSecond},
	})
	log.Info("session started",
		zap.String("first", first.ID()),
		zap.String("second", second.ID()))
	return s
}

func (s *Session) First() Participant   { return s.first }
func (s *Session) Second() Participant  { return s.second }
func (s *Session) PlyCount() int        { return s.plyCount }
func (s *Session) Finished() bool       { return s.status == StatusFinished }
func (s *Session) StartedAt() time.Time { return s.startedAt }
func (s *Session) Board() rules.Board   { return s.board }

// Has reports whether the connection with the given identity is one of
// the two participants.
func (s *Session) Has(id string) bool {
	return s.first.ID() == id || s.second.ID() == id
}

// OnMove applies one move attempt. Every invalid path (finished game,
// out-of-turn sender, foreign sender, illegal move) is a silent no-op:
// no state change and no message to either participant.
func (s *Session) OnMove(p Participant, mv types.MoveDescriptor) {
	if s.status == StatusFinished {
		s.log.Debug("move against finished session dropped", zap.String("conn", p.ID()))
		return
	}

	mover, opponent, side := s.first, s.second, SideFirst
	if s.plyCount%2 == 1 {
		mover, opponent, side = s.second, s.first, SideSecond
	}
	if p.ID() != mover.ID() {
		s.log.Debug("out-of-turn move dropped",
			zap.String("conn", p.ID()),
			zap.Int("ply", s.plyCount))
		return
	}

	next, err := s.auth.Apply(s.board, rules.Move{
		From:      rules.Square(mv.From),
		To:        rules.Square(mv.To),
		Promotion: rules.PieceKind(mv.Promotion),
	})
	if err != nil {
		s.log.Debug("illegal move dropped",
			zap.String("conn", p.ID()),
			zap.String("from", mv.From),
			zap.String("to", mv.To))
		return
	}
	s.board = next

	if s.auth.IsTerminal(next) {
		// The mover wins: the side to move in a terminal position is
		// the side with no legal continuation.
		s.status = StatusFinished
		over := types.ServerMessage{
			Type:    types.MsgGameOver,
			Payload: types.ServerPayload{Winner: side},
		}
		s.first.Send(over)
		s.second.Send(over)
		s.log.Info("session finished",
			zap.String("winner", side),
			zap.Int("plies", s.plyCount+1))
		return
	}

	opponent.Send(types.ServerMessage{
		Type:    types.MsgMove,
		Payload: types.ServerPayload{Move: &mv},
	})
	s.plyCount++
}
