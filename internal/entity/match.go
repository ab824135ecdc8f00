package entity

import "time"

// Match is the archived record of one finished game.
type Match struct {
	ID       string        `json:"id"`
	Game     string        `json:"game"`
	Agent1   string        `json:"agent1"`
	Agent2   string        `json:"agent2"`
	WinnerID int           `json:"winner_id"`
	Moves    int           `json:"moves"`
	Duration time.Duration `json:"duration"`
	PlayedAt time.Time     `json:"played_at"`
}
