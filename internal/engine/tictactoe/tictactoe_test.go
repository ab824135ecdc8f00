package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = markX
	o = markO
	e = emptyCell
)

func newTestGame(t *testing.T, board engine.Board, turn int) engine.Game {
	t.Helper()

	player1, err := engine.NewPlayer(engine.Player1ID, nil)
	require.NoError(t, err)

	player2, err := engine.NewPlayer(engine.Player2ID, nil)
	require.NoError(t, err)

	game := engine.NewGame(New(), player1, player2, board)
	game.Turn = turn

	return game
}

func TestRules_LegalMoves(t *testing.T) {
	t.Run("fresh board offers every cell", func(t *testing.T) {
		game := newTestGame(t, nil, 0)

		moves := game.LegalMoves()

		require.Len(t, moves, 9)
		assert.Contains(t, moves, engine.Move{I: 0, J: 0})
		assert.Contains(t, moves, engine.Move{I: 2, J: 2})
	})

	t.Run("occupied cells are excluded", func(t *testing.T) {
		// Given: X in the centre
		game := newTestGame(t, Board{Cells: [9]int{e, e, e, e, x, e, e, e, e}}, 1)

		moves := game.LegalMoves()

		require.Len(t, moves, 8)
		assert.NotContains(t, moves, engine.Move{I: 1, J: 1})
	})

	t.Run("finished game has none", func(t *testing.T) {
		// Given: X already owns the top row
		game := newTestGame(t, Board{Cells: [9]int{x, x, x, o, o, e, e, e, e}}, 1)

		require.Empty(t, game.LegalMoves())
	})
}

func TestRules_Apply(t *testing.T) {
	t.Run("places the mover's mark", func(t *testing.T) {
		game := newTestGame(t, nil, 0)

		// When: player 1 takes the centre
		next, err := game.Apply(engine.Move{I: 1, J: 1})
		require.NoError(t, err)

		// Then: the centre is an X and it is O's turn
		require.Equal(t, Board{Cells: [9]int{e, e, e, e, x, e, e, e, e}}, next.Board)
		require.Equal(t, engine.Player2ID, next.Player().ID)

		// Then: the original board is untouched
		require.Equal(t, Board{}, game.Board)
	})

	t.Run("rejects an out-of-range cell", func(t *testing.T) {
		game := newTestGame(t, nil, 0)

		_, err := game.Apply(engine.Move{I: 3, J: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("rejects a negative cell", func(t *testing.T) {
		game := newTestGame(t, nil, 0)

		_, err := game.Apply(engine.Move{I: 0, J: -1})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{x, e, e, e, e, e, e, e, e}}, 1)

		_, err := game.Apply(engine.Move{I: 0, J: 0})

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})
}

func TestRules_Winner(t *testing.T) {
	t.Run("row win goes to X", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{x, x, x, o, o, e, e, e, e}}, 1)

		winner, over := game.Winner()

		require.True(t, over)
		require.Equal(t, engine.Player1ID, winner.ID)
	})

	t.Run("column win goes to O", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{o, x, e, o, x, e, o, e, x}}, 0)

		winner, over := game.Winner()

		require.True(t, over)
		require.Equal(t, engine.Player2ID, winner.ID)
	})

	t.Run("diagonal win", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{x, o, e, o, x, e, e, e, x}}, 1)

		winner, over := game.Winner()

		require.True(t, over)
		require.Equal(t, engine.Player1ID, winner.ID)
	})

	t.Run("full board with no line is a tie", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{o, x, o, o, x, x, x, o, o}}, 0)

		winner, over := game.Winner()

		require.True(t, over)
		require.Equal(t, engine.TieID, winner.ID)
	})

	t.Run("ongoing game has no winner", func(t *testing.T) {
		game := newTestGame(t, Board{Cells: [9]int{x, o, x, e, o, e, x, e, e}}, 1)

		_, over := game.Winner()

		require.False(t, over)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{Cells: [9]int{x, o, e, e, x, e, e, e, o}}

	require.Equal(t, "|X|O| |\n| |X| |\n| | |O|\n", board.String())
}
