package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
)

// Board is an immutable snapshot of a game position. Implementations are
// small comparable structs, so two boards are equal exactly when their
// contents are.
type Board interface {
	fmt.Stringer
}

// Rules knows everything about one game: how boards start, which moves are
// legal, how a move transforms a board and when somebody has won. All
// methods are pure; Apply returns a fresh board and never touches its input.
type Rules interface {
	Name() string
	DefaultBoard() Board
	RandomBoard(rng *rand.Rand) Board
	LegalMoves(board Board) []Move
	Apply(board Board, move Move, player Player) (Board, error)
	Winner(game Game) (Player, bool)
	ParseMove(input string) (Move, error)
}

// Agent produces a legal move for the game it is handed.
type Agent interface {
	NextMove(ctx context.Context, game Game) (Move, error)
	String() string
}

// Score maps a finished game's winner to player 1's payoff: 1.0 for a
// player 1 win, 0.0 for a player 2 win, 0.5 for a tie.
func Score(winner Player) (float64, error) {
	switch winner.ID {
	case Player1ID:
		return 1.0, nil
	case Player2ID:
		return 0.0, nil
	case TieID:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, winner.ID)
	}
}
