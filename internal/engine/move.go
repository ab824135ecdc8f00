package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
)

// Move is a single action as an (index, magnitude) pair. The meaning is up
// to the rules: for nim it is (heap, stones taken), for tic-tac-toe it is
// (row, column).
type Move struct {
	I int
	J int
}

func (that Move) String() string {
	return fmt.Sprintf("Move(%d, %d)", that.I, that.J)
}

// Less orders moves by their tuple value.
func (that Move) Less(other Move) bool {
	if that.I != other.I {
		return that.I < other.I
	}
	return that.J < other.J
}

// SortMoves sorts moves in place by tuple value.
func SortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Less(moves[j])
	})
}

// ParseMovePair reads an "i,j" pair typed at the terminal, tolerating
// spaces and parentheses around the tuple.
func ParseMovePair(input string) (Move, error) {
	cleaned := strings.NewReplacer("(", "", ")", "", ",", " ").Replace(input)

	fields := strings.Fields(cleaned)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrBadInput, input)
	}

	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrBadInput, input)
	}

	j, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrBadInput, input)
	}

	return Move{I: i, J: j}, nil
}
