package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/boardgame-arena/internal/agent"
	"github.com/rocketscienceinc/boardgame-arena/internal/apperror"
	"github.com/rocketscienceinc/boardgame-arena/internal/arena"
	"github.com/rocketscienceinc/boardgame-arena/internal/config"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine/nim"
	"github.com/rocketscienceinc/boardgame-arena/internal/engine/tictactoe"
	"github.com/rocketscienceinc/boardgame-arena/internal/mcts"
	"github.com/rocketscienceinc/boardgame-arena/internal/repository"
	"github.com/rocketscienceinc/boardgame-arena/internal/repository/storage"
)

var (
	ErrUnknownGame  = errors.New("unknown game")
	ErrUnknownAgent = errors.New("unknown agent")
)

// PlayOptions configures an interactive human-vs-agent session.
type PlayOptions struct {
	Game       string
	Agent      string
	Start      bool // the human moves first
	Iterations int
	Seed       int64
}

// SimulateOptions configures an agent-vs-agent series.
type SimulateOptions struct {
	Game        string
	Agent1      string
	Agent2      string
	Iterations1 int
	Iterations2 int
	Runs        int
	Seed        int64
	Silent      bool
	RandomBoard bool
}

// RunPlay plays an open-ended interactive series of the human against the
// chosen agent.
func RunPlay(logger *slog.Logger, conf *config.Config, opts PlayOptions) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rules, err := rulesByName(opts.Game)
	if err != nil {
		return err
	}

	rng := newRand(opts.Seed)

	opponent, err := buildAgent(opts.Agent, opts.Iterations, rng)
	if err != nil {
		return err
	}

	humanID, agentID := engine.Player1ID, engine.Player2ID
	if !opts.Start {
		humanID, agentID = agentID, humanID
	}

	humanPlayer, err := engine.NewPlayer(humanID, agent.NewHuman(os.Stdin, os.Stdout))
	if err != nil {
		return err
	}

	agentPlayer, err := engine.NewPlayer(agentID, opponent)
	if err != nil {
		return err
	}

	first, second := humanPlayer, agentPlayer
	if !opts.Start {
		first, second = agentPlayer, humanPlayer
	}

	fmt.Printf("Playing against %s\n", opponent)

	runner, closeArchive, err := newRunner(ctx, log, conf, false)
	if err != nil {
		return err
	}
	defer closeArchive()

	newGame := func() engine.Game {
		return engine.NewGame(rules, first, second, nil)
	}

	if _, err = runner.RunSeries(ctx, newGame, 0); err != nil {
		if errors.Is(err, apperror.ErrQuit) {
			log.Info("player quit")
			return nil
		}

		return err
	}

	return nil
}

// RunSimulate plays a fixed number of agent-vs-agent matches and reports
// the final tally.
func RunSimulate(logger *slog.Logger, conf *config.Config, opts SimulateOptions) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rules, err := rulesByName(opts.Game)
	if err != nil {
		return err
	}

	rng := newRand(opts.Seed)

	agent1, err := buildAgent(opts.Agent1, opts.Iterations1, rng)
	if err != nil {
		return err
	}

	agent2, err := buildAgent(opts.Agent2, opts.Iterations2, rng)
	if err != nil {
		return err
	}

	player1, err := engine.NewPlayer(engine.Player1ID, agent1)
	if err != nil {
		return err
	}

	player2, err := engine.NewPlayer(engine.Player2ID, agent2)
	if err != nil {
		return err
	}

	runner, closeArchive, err := newRunner(ctx, log, conf, opts.Silent)
	if err != nil {
		return err
	}
	defer closeArchive()

	newGame := func() engine.Game {
		var board engine.Board
		if opts.RandomBoard {
			board = rules.RandomBoard(rng)
		}

		return engine.NewGame(rules, player1, player2, board)
	}

	tally, err := runner.RunSeries(ctx, newGame, opts.Runs)
	if err != nil {
		return err
	}

	log.Info("series finished",
		"game", rules.Name(),
		"agent1", agent1.String(),
		"agent2", agent2.String(),
		"games", tally.Games,
		"wins1", tally.Wins1,
		"wins2", tally.Wins2,
		"ties", tally.Ties,
	)

	return nil
}

func rulesByName(name string) (engine.Rules, error) {
	switch name {
	case "nim":
		return nim.New(), nil
	case "tictactoe":
		return tictactoe.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}
}

func buildAgent(kind string, iterations int, rng *rand.Rand) (engine.Agent, error) {
	switch kind {
	case "random":
		return agent.NewRandom(rng), nil
	case "mcts":
		return mcts.New(mcts.WithIterations(iterations), mcts.WithRand(rng)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, kind)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // games, not crypto
}

// newRunner assembles the arena runner, attaching the redis match archive
// when an address is configured.
func newRunner(ctx context.Context, logger *slog.Logger, conf *config.Config, silent bool) (*arena.Runner, func(), error) {
	opts := []arena.Option{
		arena.WithInput(os.Stdin),
		arena.WithSilent(silent),
	}

	closer := func() {}

	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		redisStorage, err := storage.NewRedisStorage(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closer = func() {
			if err = redisStorage.Close(); err != nil {
				logger.Error("could not close redis storage", "error", err)
			}
		}

		opts = append(opts, arena.WithArchive(repository.NewMatchRepository(redisStorage.Connection)))
	}

	return arena.NewRunner(logger, os.Stdout, opts...), closer, nil
}
