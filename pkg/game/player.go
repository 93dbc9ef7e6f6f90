package game

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

// Player chooses the next edge for the side to move
type Player interface {
	Name() string
	NextMove(ctx context.Context, g *Game) (sim.Edge, error)
}

// HumanPlayer reads moves line by line, asking again until it gets an empty edge
type HumanPlayer struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(name string, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, scanner: bufio.NewScanner(in), out: out}
}

func (h *HumanPlayer) Name() string {
	return h.name
}

func (h *HumanPlayer) NextMove(ctx context.Context, g *Game) (sim.Edge, error) {
	board := g.Board()
	for {
		if err := ctx.Err(); err != nil {
			return sim.NoEdge, err
		}

		fmt.Fprintf(h.out, "Enter the line number (0-%d) to color: ", sim.NumEdges-1)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return sim.NoEdge, errors.Wrap(err, "read move")
			}
			return sim.NoEdge, ErrInputClosed
		}

		edge, err := sim.ParseEdge(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if c := board.At(edge); c != sim.ColorNone {
			fmt.Fprintf(h.out, "Line %v is already %v.\n", edge, c)
			continue
		}
		return edge, nil
	}
}

// EnginePlayer asks a search engine for its move
type EnginePlayer struct {
	name   string
	engine *search.Engine
	logger *zap.Logger
}

func NewEnginePlayer(name string, engine *search.Engine, logger *zap.Logger) *EnginePlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnginePlayer{name: name, engine: engine, logger: logger}
}

func (e *EnginePlayer) Name() string {
	return e.name
}

func (e *EnginePlayer) Engine() *search.Engine {
	return e.engine
}

func (e *EnginePlayer) NextMove(ctx context.Context, g *Game) (sim.Edge, error) {
	if err := ctx.Err(); err != nil {
		return sim.NoEdge, err
	}
	if g.Turn() != e.engine.Player() {
		return sim.NoEdge, errors.Errorf("engine plays %v, but it's %v to move", e.engine.Player(), g.Turn())
	}

	move, err := e.engine.Search(g.Board())
	if err != nil {
		return sim.NoEdge, err
	}
	if !move.Edge.Valid() {
		return sim.NoEdge, errors.Wrapf(ErrNoMove, "%s at depth %d", e.name, e.engine.Limits().Depth)
	}

	stats := e.engine.Stats()
	e.logger.Debug("engine move",
		zap.String("player", e.name),
		zap.Stringer("move", move),
		zap.Int("depth", stats.Depth),
		zap.Uint64("nodes", stats.Nodes),
		zap.Uint64("cutoffs", stats.Cutoffs),
		zap.Int("time_ms", stats.TimeMs),
	)
	return move.Edge, nil
}

// Run plays the game to the end, asking red and blue for moves in turn
func (g *Game) Run(ctx context.Context, red, blue Player) (sim.Termination, error) {
	players := map[sim.Color]Player{sim.ColorRed: red, sim.ColorBlue: blue}

	for !g.IsOver() {
		player := players[g.turn]
		edge, err := player.NextMove(ctx, g)
		if err != nil {
			return g.termination, errors.Wrapf(err, "%s (%v)", player.Name(), g.turn)
		}
		if err := g.Play(edge); err != nil {
			return g.termination, err
		}
	}

	return g.termination, nil
}
