package rules

import (
	chess "github.com/corentings/chess/v2"
)

// ChessAuthority implements Authority on top of corentings/chess.
type ChessAuthority struct{}

func NewChessAuthority() *ChessAuthority { return &ChessAuthority{} }

type chessBoard struct {
	game *chess.Game
}

func (b *chessBoard) FEN() string { return b.game.FEN() }

func (a *ChessAuthority) NewBoard() Board {
	return &chessBoard{game: chess.NewGame()}
}

func (a *ChessAuthority) Apply(b Board, mv Move) (Board, error) {
	cur, ok := b.(*chessBoard)
	if !ok {
		return b, ErrIllegalMove
	}
	uci := mv.UCI()
	if uci == "" {
		return b, ErrIllegalMove
	}
	next, err := cloneGame(cur.game)
	if err != nil {
		return b, ErrIllegalMove
	}
	if err := next.PushNotationMove(uci, chess.UCINotation{}, nil); err != nil {
		return b, ErrIllegalMove
	}
	return &chessBoard{game: next}, nil
}

func (a *ChessAuthority) IsTerminal(b Board) bool {
	cur, ok := b.(*chessBoard)
	if !ok {
		return false
	}
	return cur.game.Outcome() != chess.NoOutcome
}

func (a *ChessAuthority) SideToMove(b Board) Side {
	cur, ok := b.(*chessBoard)
	if !ok {
		return SideWhite
	}
	if cur.game.Position().Turn() == chess.White {
		return SideWhite
	}
	return SideBlack
}

// cloneGame rebuilds a position from its FEN so Apply can leave the
// input board untouched. FEN carries castling rights and the en passant
// square, which is all legality needs.
func cloneGame(g *chess.Game) (*chess.Game, error) {
	option, err := chess.FEN(g.FEN())
	if err != nil {
		return nil, err
	}
	return chess.NewGame(option), nil
}
