package engine

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
)

// Game is an immutable aggregate of the rules, the two players, the current
// board and whose turn it is. Every move produces a new Game value; nothing
// is ever updated in place.
type Game struct {
	Rules   Rules
	Players [2]Player
	Board   Board
	Turn    int // index into Players of the side to move
}

// NewGame starts a game on the given board, or on the rules' default board
// when board is nil. The first player moves first.
func NewGame(rules Rules, player1, player2 Player, board Board) Game {
	if board == nil {
		board = rules.DefaultBoard()
	}

	return Game{
		Rules:   rules,
		Players: [2]Player{player1, player2},
		Board:   board,
	}
}

// Player is the side to move.
func (that Game) Player() Player {
	return that.Players[that.Turn]
}

// Winner reports the winning player once the board is terminal. The second
// return value is false while the game is still running.
func (that Game) Winner() (Player, bool) {
	return that.Rules.Winner(that)
}

// LegalMoves enumerates every move the side to move may play. A finished
// game has none.
func (that Game) LegalMoves() []Move {
	if _, over := that.Winner(); over {
		return nil
	}

	return that.Rules.LegalMoves(that.Board)
}

// Apply plays one move for the side to move and returns the resulting game
// with the turn flipped. The receiver is left untouched.
func (that Game) Apply(move Move) (Game, error) {
	if _, over := that.Winner(); over {
		return that, apperror.ErrGameFinished
	}

	board, err := that.Rules.Apply(that.Board, move, that.Player())
	if err != nil {
		return that, fmt.Errorf("apply %s: %w", move, err)
	}

	next := that
	next.Board = board
	next.Turn = 1 - that.Turn

	return next, nil
}

// Step asks the current player's agent for a move and applies it.
func (that Game) Step(ctx context.Context) (Game, error) {
	move, err := that.Player().Agent.NextMove(ctx, that)
	if err != nil {
		return that, err
	}

	return that.Apply(move)
}
