package main

/*
Interactive Sim (triangle game) against the computer.

Both players color one of the 15 lines between 6 points in turn, whoever
completes a triangle in their own color loses.

Configuration is read from the file given with -config and SIM_* environment
variables, see internal/config.
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-sim/internal/config"
	"github.com/IlikeChooros/go-sim/pkg/game"
	"github.com/IlikeChooros/go-sim/pkg/render"
	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

func main() {
	cfgPath := flag.String("config", "", "path to a config file (.env, .yaml, .json, .toml)")
	position := flag.String("position", "", "start from given board notation instead of the empty board")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger, *position); err != nil {
		if errors.Is(err, game.ErrInputClosed) || errors.Is(err, context.Canceled) {
			logger.Info("game abandoned")
			return
		}
		logger.Fatal("game failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, position string) error {
	human := cfg.Human()
	computer := human.Opponent()
	out := render.New(os.Stdout, cfg.Color)

	engine, err := search.NewEngine(computer)
	if err != nil {
		return err
	}
	if err := engine.SetLimits(search.DefaultLimits().SetDepth(cfg.Depth)); err != nil {
		return err
	}

	g := game.New(logger)
	if position != "" {
		if err := g.SetPosition(position); err != nil {
			return err
		}
	}

	humanPlayer := game.NewHumanPlayer("human", os.Stdin, os.Stdout)
	computerPlayer := game.NewEnginePlayer("computer", engine, logger)

	g.OnMove(func(m game.MoveRecord) {
		if m.Color == computer {
			out.Printf("Computer chose line %d (%v).\n", m.Edge, m.Edge)
		}
		if !g.IsOver() {
			out.PrintBoard(g.Board())
		}
	})

	out.Printf("Welcome to the Triangle Game!\n")
	out.Printf("You are playing as %s (%c), the computer searches %d moves ahead.\n",
		human, human.Rune(), cfg.Depth)
	out.PrintBoard(g.Board())

	red, blue := game.Player(humanPlayer), game.Player(computerPlayer)
	if human == sim.ColorBlue {
		red, blue = blue, red
	}

	result, err := g.Run(ctx, red, blue)
	if err != nil {
		return err
	}

	out.PrintBoard(g.Board())
	out.Printf("%s\n", out.Result(result, human))
	logger.Info("game finished",
		zap.String("game", g.ID().String()),
		zap.Stringer("result", result),
		zap.Int("plies", g.Ply()),
	)
	return nil
}
