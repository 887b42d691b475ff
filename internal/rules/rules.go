package rules

import "errors"

var ErrIllegalMove = errors.New("illegal move")

type Side string

const (
	SideWhite Side = "white"
	SideBlack Side = "black"
)

func (s Side) Opponent() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

type PieceKind string

const (
	Queen  PieceKind = "q"
	Rook   PieceKind = "r"
	Bishop PieceKind = "b"
	Knight PieceKind = "n"
)

// Square is a board coordinate: file letter a-h plus rank digit 1-8.
type Square string

func (sq Square) Valid() bool {
	if len(sq) != 2 {
		return false
	}
	return sq[0] >= 'a' && sq[0] <= 'h' && sq[1] >= '1' && sq[1] <= '8'
}

// SquareFromIndex converts a row/column board index to a Square.
// Row 0 is the rank-8 side of the board.
func SquareFromIndex(row, col int) Square {
	file := byte('a' + col%8)
	rank := byte('0' + 8 - row)
	return Square([]byte{file, rank})
}

// Move is a move request in coordinate form. Promotion is empty for
// non-promoting moves.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// UCI renders the move in long algebraic ("e2e4", "e7e8q"). Returns ""
// when the squares or promotion piece are out of range.
func (m Move) UCI() string {
	if !m.From.Valid() || !m.To.Valid() {
		return ""
	}
	u := string(m.From) + string(m.To)
	switch m.Promotion {
	case "":
	case Queen, Rook, Bishop, Knight:
		u += string(m.Promotion)
	default:
		return ""
	}
	return u
}

// Board is an opaque game position. Implementations belong to the
// Authority that produced them; callers only pass boards back in.
type Board interface {
	FEN() string
}

// Authority owns all game-specific legality and termination logic.
// Apply never mutates the board it is given: it either returns a new
// board or the original one alongside ErrIllegalMove.
type Authority interface {
	NewBoard() Board
	Apply(b Board, mv Move) (Board, error)
	IsTerminal(b Board) bool
	SideToMove(b Board) Side
}
