// Package mcts implements a Monte Carlo tree search agent: UCT selection,
// single-node expansion, uniformly random playouts and win-rate
// backpropagation. Each decision runs a fixed iteration budget and then
// plays the most visited root move.
package mcts

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

const defaultIterations = 1000

// defaultExploration is the classic UCB1 constant sqrt(2).
var defaultExploration = math.Sqrt2

type Option func(*Agent)

// WithIterations sets the playout budget per decision.
func WithIterations(n int) Option {
	return func(that *Agent) {
		that.iterations = n
	}
}

// WithExploration sets the UCB1 exploration constant.
func WithExploration(c float64) Option {
	return func(that *Agent) {
		that.exploration = c
	}
}

// WithRand sets the random source used for expansion order and playouts.
func WithRand(rng *rand.Rand) Option {
	return func(that *Agent) {
		that.rng = rng
	}
}

// Agent is a tree-search move policy. It is stateless between decisions:
// every NextMove builds a fresh tree.
type Agent struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
}

func New(opts ...Option) *Agent {
	agent := &Agent{
		iterations:  defaultIterations,
		exploration: defaultExploration,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(agent)
	}

	return agent
}

func (that *Agent) NextMove(ctx context.Context, game engine.Game) (engine.Move, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, apperror.ErrNoLegalMoves
	}

	if len(moves) == 1 {
		return moves[0], nil
	}

	root := &node{
		// the move into the root was made by the side not to move
		player:  game.Players[1-game.Turn],
		untried: moves,
	}

	for i := 0; i < that.iterations; i++ {
		select {
		case <-ctx.Done():
			if best := root.bestChild(); best != nil {
				return best.move, nil
			}

			return engine.Move{}, ctx.Err()
		default:
		}

		that.iterate(root, game)
	}

	best := root.bestChild()
	if best == nil {
		return moves[0], nil
	}

	return best.move, nil
}

// iterate runs one selection/expansion/simulation/backpropagation cycle.
// game is a value, so walking down the tree never disturbs the real game.
func (that *Agent) iterate(root *node, game engine.Game) {
	cur := root

	// Selection: descend through fully expanded nodes by UCT.
	for len(cur.untried) == 0 && len(cur.children) > 0 {
		cur = cur.selectChild(that.exploration)
		game = mustApply(game, cur.move)
	}

	// Expansion: attach one random untried move.
	if len(cur.untried) > 0 {
		idx := that.rng.Intn(len(cur.untried))
		mover := game.Player()
		game = mustApply(game, cur.untried[idx])
		cur = cur.expand(idx, mover, game.LegalMoves())
	}

	// Simulation + backpropagation.
	cur.backpropagate(that.rollout(game))
}

// rollout plays uniformly random moves to the end and returns the winner.
func (that *Agent) rollout(game engine.Game) engine.Player {
	for {
		if winner, over := game.Winner(); over {
			return winner
		}

		moves := game.LegalMoves()
		game = mustApply(game, moves[that.rng.Intn(len(moves))])
	}
}

// mustApply plays a move known to be legal; a failure here is a rules bug.
func mustApply(game engine.Game, move engine.Move) engine.Game {
	next, err := game.Apply(move)
	if err != nil {
		panic(fmt.Sprintf("mcts: applying legal move %s: %v", move, err))
	}

	return next
}

func (that *Agent) String() string {
	return fmt.Sprintf("MctsAgent(n_iter=%d)", that.iterations)
}
