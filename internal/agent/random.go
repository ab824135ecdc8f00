// Package agent provides the simple move policies: a uniformly random
// player and a human typing at the terminal.
package agent

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

// Random picks a legal move uniformly at random.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (that *Random) NextMove(_ context.Context, game engine.Game) (engine.Move, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, apperror.ErrNoLegalMoves
	}

	return moves[that.rng.Intn(len(moves))], nil
}

func (that *Random) String() string {
	return "RandomAgent"
}
