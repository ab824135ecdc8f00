// Package tictactoe implements the classic 3x3 game. Player 1 plays X and
// moves first, player 2 plays O; a full board with no line is a tie.
package tictactoe

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

const size = 3

const (
	emptyCell = 0
	markX     = engine.Player1ID
	markO     = engine.Player2ID
)

var winCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the nine cells row by row: 0 empty, 1 an X, 2 an O.
type Board struct {
	Cells [size * size]int
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sb.WriteString("|" + markString(that.Cells[row*size+col]))
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}

// Full reports whether no empty cell is left.
func (that Board) Full() bool {
	for _, cell := range that.Cells {
		if cell == emptyCell {
			return false
		}
	}

	return true
}

func markString(mark int) string {
	switch mark {
	case markX:
		return "X"
	case markO:
		return "O"
	default:
		return " "
	}
}

// Rules implements engine.Rules for tic-tac-toe.
type Rules struct{}

func New() Rules {
	return Rules{}
}

func (Rules) Name() string {
	return "tictactoe"
}

func (Rules) DefaultBoard() engine.Board {
	return Board{}
}

// RandomBoard is the empty board: tic-tac-toe always starts from scratch.
func (Rules) RandomBoard(_ *rand.Rand) engine.Board {
	return Board{}
}

// LegalMoves yields a (row, column) move for every empty cell.
func (Rules) LegalMoves(board engine.Board) []engine.Move {
	b := board.(Board)

	var moves []engine.Move
	for idx, cell := range b.Cells {
		if cell != emptyCell {
			continue
		}

		moves = append(moves, engine.Move{I: idx / size, J: idx % size})
	}

	return moves
}

func (Rules) Apply(board engine.Board, move engine.Move, player engine.Player) (engine.Board, error) {
	b := board.(Board)

	if move.I < 0 || move.I >= size || move.J < 0 || move.J >= size {
		return nil, fmt.Errorf("%w: no cell (%d, %d)", apperror.ErrInvalidMove, move.I, move.J)
	}

	idx := move.I*size + move.J
	if b.Cells[idx] != emptyCell {
		return nil, fmt.Errorf("%w: cell (%d, %d) is occupied", apperror.ErrIllegalMove, move.I, move.J)
	}

	b.Cells[idx] = player.ID

	return b, nil
}

// Winner scans the eight lines for three equal marks; a full board with no
// line is a tie.
func (Rules) Winner(game engine.Game) (engine.Player, bool) {
	b := game.Board.(Board)

	for _, combo := range winCombos {
		a, m, c := b.Cells[combo[0]], b.Cells[combo[1]], b.Cells[combo[2]]
		if a != emptyCell && a == m && m == c {
			return playerByID(game, a), true
		}
	}

	if b.Full() {
		return engine.Tied, true
	}

	return engine.Player{}, false
}

func playerByID(game engine.Game, id int) engine.Player {
	for _, player := range game.Players {
		if player.ID == id {
			return player
		}
	}

	return engine.Player{ID: id}
}

// ParseMove reads a "row,col" pair.
func (Rules) ParseMove(input string) (engine.Move, error) {
	return engine.ParseMovePair(input)
}
