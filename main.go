package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/boardgame-arena/internal"
	"github.com/rocketscienceinc/boardgame-arena/internal/config"
)

// main - is the entry point of the application. It initializes the
// configuration, logger, and dispatches the chosen subcommand.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	conf := initConfig()
	logger := initLogger(conf)

	var err error

	switch os.Args[1] {
	case "play":
		err = runPlay(logger, conf, os.Args[2:])
	case "simulate":
		err = runSimulate(logger, conf, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlay(logger *slog.Logger, conf *config.Config, args []string) error {
	flags := flag.NewFlagSet("play", flag.ExitOnError)
	game := flags.String("game", conf.Game, "which game (nim|tictactoe)")
	agentKind := flags.String("agent", conf.Agent, "which agent (random|mcts)")
	start := flags.Bool("start", true, "whether you start")
	iterations := flags.Int("iterations", conf.Iterations, "mcts playouts per move")
	seed := flags.Int64("seed", conf.Seed, "random seed (0 for time-based)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	return app.RunPlay(logger, conf, app.PlayOptions{
		Game:       *game,
		Agent:      *agentKind,
		Start:      *start,
		Iterations: *iterations,
		Seed:       *seed,
	})
}

func runSimulate(logger *slog.Logger, conf *config.Config, args []string) error {
	flags := flag.NewFlagSet("simulate", flag.ExitOnError)
	game := flags.String("game", conf.Game, "which game (nim|tictactoe)")
	agent1 := flags.String("agent1", conf.Agent, "agent for player 1 (random|mcts)")
	agent2 := flags.String("agent2", conf.Agent, "agent for player 2 (random|mcts)")
	iterations1 := flags.Int("iterations1", conf.Iterations, "mcts playouts per move for player 1")
	iterations2 := flags.Int("iterations2", conf.Iterations, "mcts playouts per move for player 2")
	runs := flags.Int("runs", conf.Runs, "number of matches to play")
	seed := flags.Int64("seed", conf.Seed, "random seed (0 for time-based)")
	silent := flags.Bool("silent", false, "suppress intermediate board renders")
	randomBoard := flags.Bool("random-board", false, "start every match from a random board")

	if err := flags.Parse(args); err != nil {
		return err
	}

	return app.RunSimulate(logger, conf, app.SimulateOptions{
		Game:        *game,
		Agent1:      *agent1,
		Agent2:      *agent2,
		Iterations1: *iterations1,
		Iterations2: *iterations2,
		Runs:        *runs,
		Seed:        *seed,
		Silent:      *silent,
		RandomBoard: *randomBoard,
	})
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: boardgame-arena <play|simulate> [flags]")
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf, err := config.Load(filepath.Join(baseDir, "config.yml"))
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
