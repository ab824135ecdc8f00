package nim

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, board engine.Board) engine.Game {
	t.Helper()

	player1, err := engine.NewPlayer(engine.Player1ID, nil)
	require.NoError(t, err)

	player2, err := engine.NewPlayer(engine.Player2ID, nil)
	require.NoError(t, err)

	return engine.NewGame(New(), player1, player2, board)
}

func TestRules_DefaultBoard(t *testing.T) {
	// When: a game starts without an explicit board
	game := newTestGame(t, nil)

	// Then: the heaps hold the classic 3, 4, 5 stones
	require.Equal(t, Board{Heaps: [3]int{3, 4, 5}}, game.Board)
}

func TestRules_RandomBoard(t *testing.T) {
	rules := New()
	rng := rand.New(rand.NewSource(42))

	// When: drawing many random boards
	for i := 0; i < 100; i++ {
		board := rules.RandomBoard(rng).(Board)

		// Then: every heap is within 3..6
		for _, heap := range board.Heaps {
			require.GreaterOrEqual(t, heap, 3)
			require.LessOrEqual(t, heap, 6)
		}
	}
}

func TestRules_LegalMoves(t *testing.T) {
	t.Run("every take from every non-empty heap", func(t *testing.T) {
		// Given: the default 3, 4, 5 board
		game := newTestGame(t, nil)

		// When: enumerating legal moves
		moves := game.LegalMoves()

		// Then: each heap contributes one move per possible take-count
		require.Len(t, moves, 3+4+5)
		assert.Contains(t, moves, engine.Move{I: 0, J: 3})
		assert.Contains(t, moves, engine.Move{I: 2, J: 5})
		assert.NotContains(t, moves, engine.Move{I: 0, J: 4})
	})

	t.Run("empty heaps are skipped", func(t *testing.T) {
		// Given: only the middle heap has stones
		game := newTestGame(t, Board{Heaps: [3]int{0, 2, 0}})

		moves := game.LegalMoves()

		require.Equal(t, []engine.Move{{I: 1, J: 1}, {I: 1, J: 2}}, moves)
	})

	t.Run("terminal board has none", func(t *testing.T) {
		// Given: an exhausted board
		game := newTestGame(t, Board{})

		// Then: the legal-move list is empty
		require.Empty(t, game.LegalMoves())
	})
}

func TestRules_Apply(t *testing.T) {
	t.Run("decreases one heap and leaves the others", func(t *testing.T) {
		game := newTestGame(t, nil)

		// When: player 1 takes two stones from heap 1
		next, err := game.Apply(engine.Move{I: 1, J: 2})
		require.NoError(t, err)

		// Then: only heap 1 shrank, and the turn passed
		require.Equal(t, Board{Heaps: [3]int{3, 2, 5}}, next.Board)
		require.Equal(t, engine.Player2ID, next.Player().ID)

		// Then: the original game is untouched
		require.Equal(t, Board{Heaps: [3]int{3, 4, 5}}, game.Board)
		require.Equal(t, engine.Player1ID, game.Player().ID)
	})

	t.Run("rejects an unknown heap", func(t *testing.T) {
		game := newTestGame(t, nil)

		_, err := game.Apply(engine.Move{I: 3, J: 1})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("rejects taking nothing", func(t *testing.T) {
		game := newTestGame(t, nil)

		_, err := game.Apply(engine.Move{I: 0, J: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("rejects overdrawing a heap", func(t *testing.T) {
		game := newTestGame(t, nil)

		_, err := game.Apply(engine.Move{I: 0, J: 4})

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("rejects moves on a finished game", func(t *testing.T) {
		game := newTestGame(t, Board{})

		_, err := game.Apply(engine.Move{I: 0, J: 1})

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestRules_Winner(t *testing.T) {
	t.Run("no winner while stones remain", func(t *testing.T) {
		game := newTestGame(t, Board{Heaps: [3]int{0, 0, 1}})

		_, over := game.Winner()

		require.False(t, over)
	})

	t.Run("last player to take a stone loses", func(t *testing.T) {
		// Given: the 1, 1, 1 endgame
		game := newTestGame(t, Board{Heaps: [3]int{1, 1, 1}})

		// When: player 1 takes heap 0, player 2 takes heap 1,
		// player 1 takes heap 2
		for _, move := range []engine.Move{{I: 0, J: 1}, {I: 1, J: 1}, {I: 2, J: 1}} {
			var err error
			game, err = game.Apply(move)
			require.NoError(t, err)
		}

		// Then: player 1 emptied the board, so player 2 wins
		winner, over := game.Winner()
		require.True(t, over)
		require.Equal(t, engine.Player2ID, winner.ID)
	})
}

func TestGame_AlwaysTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Given: many games of random legal moves
	for i := 0; i < 50; i++ {
		game := newTestGame(t, New().RandomBoard(rng))

		// Then: each one reaches a terminal state within the stone count
		for moves := 0; moves <= 3*6; moves++ {
			if _, over := game.Winner(); over {
				break
			}

			legal := game.LegalMoves()
			require.NotEmpty(t, legal)

			var err error
			game, err = game.Apply(legal[rng.Intn(len(legal))])
			require.NoError(t, err)
		}

		_, over := game.Winner()
		require.True(t, over)
	}
}

func TestRules_ParseMove(t *testing.T) {
	rules := New()

	t.Run("plain pair", func(t *testing.T) {
		move, err := rules.ParseMove("1,2")

		require.NoError(t, err)
		require.Equal(t, engine.Move{I: 1, J: 2}, move)
	})

	t.Run("tuple syntax", func(t *testing.T) {
		move, err := rules.ParseMove("(0, 3)")

		require.NoError(t, err)
		require.Equal(t, engine.Move{I: 0, J: 3}, move)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := rules.ParseMove("first heap please")

		require.ErrorIs(t, err, apperror.ErrBadInput)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{Heaps: [3]int{3, 4, 5}}

	require.Equal(t, "|0|1|2|\n|-|-|-|\n|3|4|5|\n", board.String())
}
