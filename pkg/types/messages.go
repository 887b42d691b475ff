package types

// Wire protocol: UTF-8 JSON text frames of the form {type, payload}.
//
// Client -> Server
//   JOIN: no payload
//   MOVE: { move: { from, to, promotion? } }
//
// Server -> Client
//   JOIN-ASSIGNED: { side: "first" | "second" }
//   MOVE:          { move: { from, to, promotion? } } (opponent only)
//   GAME_OVER:     { winner: "first" | "second" } (both players)

const (
	MsgJoin         = "JOIN"
	MsgJoinAssigned = "JOIN-ASSIGNED"
	MsgMove         = "MOVE"
	MsgGameOver     = "GAME_OVER"
)

// MoveDescriptor is a move in coordinate form. Squares are file letter
// a-h plus rank digit 1-8 ("e2"). Promotion, when present, is one of
// q, r, b, n.
type MoveDescriptor struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

type ClientMessage struct {
	Type    string         `json:"type"`
	Payload *ClientPayload `json:"payload,omitempty"`
}

type ClientPayload struct {
	Move MoveDescriptor `json:"move"`
}

type ServerMessage struct {
	Type    string        `json:"type"`
	Payload ServerPayload `json:"payload"`
}

type ServerPayload struct {
	Side   string          `json:"side,omitempty"`
	Move   *MoveDescriptor `json:"move,omitempty"`
	Winner string          `json:"winner,omitempty"`
}
