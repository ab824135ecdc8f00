package mcts

import (
	"math"

	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
)

// node is one state in the search tree. player is the player whose move led
// into this node; wins accumulates that player's rewards over every playout
// passing through here.
type node struct {
	parent   *node
	children []*node

	move   engine.Move
	player engine.Player

	wins   float64
	visits int

	untried []engine.Move
}

// uct is the UCB1 value used during selection: exploitation plus
// c * sqrt(ln(parent visits) / visits). Unvisited nodes sort first.
func (that *node) uct(c float64) float64 {
	if that.visits == 0 {
		return math.Inf(1)
	}

	exploit := that.wins / float64(that.visits)
	explore := c * math.Sqrt(math.Log(float64(that.parent.visits))/float64(that.visits))

	return exploit + explore
}

func (that *node) selectChild(c float64) *node {
	best := that.children[0]
	bestVal := best.uct(c)

	for _, child := range that.children[1:] {
		if val := child.uct(c); val > bestVal {
			best = child
			bestVal = val
		}
	}

	return best
}

// expand removes the untried move at idx and attaches a child for it.
// untried is the child state's own legal-move list.
func (that *node) expand(idx int, player engine.Player, untried []engine.Move) *node {
	move := that.untried[idx]
	that.untried[idx] = that.untried[len(that.untried)-1]
	that.untried = that.untried[:len(that.untried)-1]

	child := &node{
		parent:  that,
		move:    move,
		player:  player,
		untried: untried,
	}
	that.children = append(that.children, child)

	return child
}

func (that *node) backpropagate(winner engine.Player) {
	for cur := that; cur != nil; cur = cur.parent {
		cur.visits++
		cur.wins += reward(winner, cur.player)
	}
}

// bestChild is the most visited child, the standard final-move policy.
func (that *node) bestChild() *node {
	if len(that.children) == 0 {
		return nil
	}

	best := that.children[0]
	for _, child := range that.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}

	return best
}

// reward scores a finished playout from mover's perspective: 1 for a win,
// 0.5 for a tie, 0 for a loss.
func reward(winner, mover engine.Player) float64 {
	if winner.ID == engine.TieID {
		return 0.5
	}

	if winner.Equal(mover) {
		return 1
	}

	return 0
}
