package engine

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
)

const (
	// TieID marks a drawn game when reported as a winner.
	TieID = -1

	Player1ID = 1
	Player2ID = 2
)

// Tied is the pseudo-player returned as the winner of a drawn game.
var Tied = Player{ID: TieID}

// Player pairs an identifier with the agent playing for it. Two players are
// the same player when their IDs match, regardless of agent.
type Player struct {
	ID    int
	Agent Agent
}

func NewPlayer(id int, agent Agent) (Player, error) {
	switch id {
	case Player1ID, Player2ID, TieID:
	default:
		return Player{}, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, id)
	}

	return Player{ID: id, Agent: agent}, nil
}

// Equal compares players by identifier only.
func (that Player) Equal(other Player) bool {
	return that.ID == other.ID
}

func (that Player) String() string {
	if that.ID == TieID {
		return "tied"
	}

	if that.Agent == nil {
		return fmt.Sprintf("Player(%d)", that.ID)
	}

	return fmt.Sprintf("Player(%d, %s)", that.ID, that.Agent)
}
