// Package nim implements misère nim on three heaps: players take any
// positive number of stones from one heap, and whoever takes the very last
// stone loses.
package nim

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

const heapCount = 3

const (
	randomHeapMin = 3
	randomHeapMax = 6
)

// Board holds the heap sizes.
type Board struct {
	Heaps [heapCount]int
}

func (that Board) String() string {
	var sb strings.Builder

	for i := range that.Heaps {
		sb.WriteString("|" + strconv.Itoa(i))
	}
	sb.WriteString("|\n")

	for range that.Heaps {
		sb.WriteString("|-")
	}
	sb.WriteString("|\n")

	for _, n := range that.Heaps {
		sb.WriteString("|" + strconv.Itoa(n))
	}
	sb.WriteString("|\n")

	return sb.String()
}

// Empty reports whether every heap is exhausted.
func (that Board) Empty() bool {
	for _, n := range that.Heaps {
		if n != 0 {
			return false
		}
	}

	return true
}

// Rules implements engine.Rules for nim.
type Rules struct{}

func New() Rules {
	return Rules{}
}

func (Rules) Name() string {
	return "nim"
}

func (Rules) DefaultBoard() engine.Board {
	return Board{Heaps: [heapCount]int{3, 4, 5}}
}

// RandomBoard draws each heap uniformly from 3..6.
func (Rules) RandomBoard(rng *rand.Rand) engine.Board {
	var board Board
	for i := range board.Heaps {
		board.Heaps[i] = randomHeapMin + rng.Intn(randomHeapMax-randomHeapMin+1)
	}

	return board
}

// LegalMoves yields, for every heap with stones left, every take-count from
// one stone up to the whole heap.
func (Rules) LegalMoves(board engine.Board) []engine.Move {
	b := board.(Board)

	var moves []engine.Move
	for i, n := range b.Heaps {
		for j := 1; j <= n; j++ {
			moves = append(moves, engine.Move{I: i, J: j})
		}
	}

	return moves
}

func (Rules) Apply(board engine.Board, move engine.Move, _ engine.Player) (engine.Board, error) {
	b := board.(Board)

	if move.I < 0 || move.I >= heapCount {
		return nil, fmt.Errorf("%w: no heap %d", apperror.ErrInvalidMove, move.I)
	}

	if move.J < 1 {
		return nil, fmt.Errorf("%w: must take at least one stone", apperror.ErrInvalidMove)
	}

	if b.Heaps[move.I] < move.J {
		return nil, fmt.Errorf("%w: heap %d holds only %d stones", apperror.ErrIllegalMove, move.I, b.Heaps[move.I])
	}

	b.Heaps[move.I] -= move.J

	return b, nil
}

// Winner applies the misère rule: once the board is empty, the player who
// took the last stone has lost, so the side now to move wins.
func (Rules) Winner(game engine.Game) (engine.Player, bool) {
	if !game.Board.(Board).Empty() {
		return engine.Player{}, false
	}

	return game.Player(), true
}

// ParseMove reads a "heap,count" pair.
func (Rules) ParseMove(input string) (engine.Move, error) {
	return engine.ParseMovePair(input)
}
