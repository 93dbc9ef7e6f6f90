package main

/*
Plays a series of engine-vs-engine games between two search depths and
prints the summary as JSON, for example:

	SIM_ARENA_RED_DEPTH2=6 SIM_ARENA_BLUE_DEPTH2=5 sim-arena -games 200

Red searches an even number of plies and blue an odd one, each engine has
a depth for both colors.
*/

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-sim/internal/config"
	"github.com/IlikeChooros/go-sim/pkg/bench"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file")
	games := flag.Int("games", -1, "number of games, overrides the config")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *games >= 0 {
		cfg.ArenaGames = *games
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	arena := bench.NewVersusArena(
		bench.NewEngineConfig(fmt.Sprintf("depth%d/%d", cfg.ArenaRedDepth1, cfg.ArenaBlueDepth1),
			cfg.ArenaRedDepth1, cfg.ArenaBlueDepth1),
		bench.NewEngineConfig(fmt.Sprintf("depth%d/%d", cfg.ArenaRedDepth2, cfg.ArenaBlueDepth2),
			cfg.ArenaRedDepth2, cfg.ArenaBlueDepth2),
	).WithContext(ctx).WithLogger(logger)

	arena.Setup(uint(cfg.ArenaGames), uint(cfg.ArenaThreads), cfg.OpeningMoves)
	arena.Start(bench.NewLogListener(logger))
	if err := arena.Wait(); err != nil {
		logger.Fatal("arena failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(arena.Summary()); err != nil {
		logger.Fatal("encode summary", zap.Error(err))
	}
}
