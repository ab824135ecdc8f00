// Package arena runs matches between two agents and tallies the outcomes
// over a series.
package arena

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
	"github.com/rocketscienceinc/boardgame-arena/internal/entity"
)

// Tally is the running score of a series.
type Tally struct {
	Games int
	Wins1 int
	Wins2 int
	Ties  int
}

func (that Tally) String() string {
	return fmt.Sprintf("games: %d | wins 1: %d | wins 2: %d | ties: %d",
		that.Games, that.Wins1, that.Wins2, that.Ties)
}

// Stats describes one finished match.
type Stats struct {
	Moves    int
	Duration time.Duration
}

// MatchArchive records finished matches. Satisfied by
// repository.MatchRepository; nil disables archiving.
type MatchArchive interface {
	Save(ctx context.Context, match *entity.Match) error
}

type Option func(*Runner)

// WithArchive records every finished match.
func WithArchive(archive MatchArchive) Option {
	return func(that *Runner) {
		that.archive = archive
	}
}

// WithSilent suppresses intermediate board renders and the winner line;
// the final board and the tally are always printed.
func WithSilent(silent bool) Option {
	return func(that *Runner) {
		that.silent = silent
	}
}

// WithInput sets the reader used for the continue-playing prompt of an
// open-ended series.
func WithInput(in io.Reader) Option {
	return func(that *Runner) {
		that.in = bufio.NewScanner(in)
	}
}

// Runner drives matches to completion and aggregates a series.
type Runner struct {
	logger  *slog.Logger
	out     io.Writer
	in      *bufio.Scanner
	archive MatchArchive
	silent  bool
}

func NewRunner(logger *slog.Logger, out io.Writer, opts ...Option) *Runner {
	runner := &Runner{
		logger: logger.With("component", "arena"),
		out:    out,
		in:     bufio.NewScanner(strings.NewReader("")),
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// PlayMatch alternates turns until a winner is determined, rendering the
// board between moves unless the runner is silent.
func (that *Runner) PlayMatch(ctx context.Context, game engine.Game) (engine.Player, Stats, error) {
	start := time.Now()
	moves := 0

	for {
		winner, over := game.Winner()
		if over {
			fmt.Fprint(that.out, game.Board)
			if !that.silent {
				fmt.Fprintf(that.out, "Winner: %s\n", winner)
			}

			return winner, Stats{Moves: moves, Duration: time.Since(start)}, nil
		}

		if !that.silent {
			fmt.Fprint(that.out, game.Board)
		}

		next, err := game.Step(ctx)
		if err != nil {
			return engine.Player{}, Stats{}, fmt.Errorf("move %d: %w", moves+1, err)
		}

		game = next
		moves++
	}
}

// RunSeries repeats matches and tallies the outcomes. With runs > 0 it
// plays exactly that many; otherwise it prompts between matches and stops
// on a quit token (or exhausted input).
func (that *Runner) RunSeries(ctx context.Context, newGame func() engine.Game, runs int) (Tally, error) {
	var tally Tally

	for {
		game := newGame()

		winner, stats, err := that.PlayMatch(ctx, game)
		if err != nil {
			return tally, err
		}

		stop := false
		if runs <= 0 {
			stop = that.askContinue()
		}

		switch winner.ID {
		case engine.Player1ID:
			tally.Wins1++
		case engine.Player2ID:
			tally.Wins2++
		case engine.TieID:
			tally.Ties++
		default:
			return tally, fmt.Errorf("%w: winner %d", apperror.ErrInvalidPlayer, winner.ID)
		}
		tally.Games++

		fmt.Fprintf(that.out, "%s\n", tally)
		that.logger.Info("match finished",
			"game", game.Rules.Name(),
			"winner", winner.ID,
			"moves", stats.Moves,
			"duration", stats.Duration,
		)

		that.archiveMatch(ctx, game, winner, stats)

		if stop || (runs > 0 && tally.Games >= runs) {
			return tally, nil
		}

		select {
		case <-ctx.Done():
			return tally, ctx.Err()
		default:
		}
	}
}

func (that *Runner) askContinue() bool {
	fmt.Fprint(that.out, "(q) to quit playing: ")

	if !that.in.Scan() {
		return true
	}

	switch strings.TrimSpace(that.in.Text()) {
	case "q", "quit", "f":
		return true
	default:
		return false
	}
}

func (that *Runner) archiveMatch(ctx context.Context, game engine.Game, winner engine.Player, stats Stats) {
	if that.archive == nil {
		return
	}

	match := &entity.Match{
		ID:       uuid.NewString(),
		Game:     game.Rules.Name(),
		Agent1:   agentName(game.Players[0]),
		Agent2:   agentName(game.Players[1]),
		WinnerID: winner.ID,
		Moves:    stats.Moves,
		Duration: stats.Duration,
		PlayedAt: time.Now(),
	}

	// archiving is best effort, a broken archive must not stop the series
	if err := that.archive.Save(ctx, match); err != nil {
		that.logger.Warn("could not archive match", "match", match.ID, "error", err)
	}
}

func agentName(player engine.Player) string {
	if player.Agent == nil {
		return ""
	}

	return player.Agent.String()
}
