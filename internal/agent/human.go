package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

// Human prompts for moves on the terminal. A quit token (or EOF) surfaces
// apperror.ErrQuit; input that does not parse as a move surfaces
// apperror.ErrBadInput. A move that parses but is not legal right now is
// reprompted.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Human) NextMove(_ context.Context, game engine.Game) (engine.Move, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, apperror.ErrNoLegalMoves
	}

	engine.SortMoves(moves)
	fmt.Fprintf(that.out, "possible moves: %v\n", moves)

	for {
		move, err := that.ask(game)
		if err != nil {
			return engine.Move{}, err
		}

		for _, legal := range moves {
			if move == legal {
				fmt.Fprintf(that.out, "performing move %s\n", move)
				return move, nil
			}
		}
	}
}

func (that *Human) ask(game engine.Game) (engine.Move, error) {
	fmt.Fprint(that.out, "choose next move: ")

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return engine.Move{}, fmt.Errorf("read move: %w", err)
		}

		// stdin closed under us, treat like a quit
		return engine.Move{}, apperror.ErrQuit
	}

	line := strings.TrimSpace(that.in.Text())
	if line == "q" || line == "quit" {
		return engine.Move{}, apperror.ErrQuit
	}

	return game.Rules.ParseMove(line)
}

func (that *Human) String() string {
	return "You"
}
