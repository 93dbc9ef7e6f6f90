// Package game drives a single game of Sim: whose turn it is, the move history
// and the end-of-game check after every half-move.
package game

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNoHistory   = errors.New("no moves to take back")
	ErrInputClosed = errors.New("input closed")
	ErrNoMove      = errors.New("player returned no move")
)

// A move as it was played
type MoveRecord struct {
	Ply   int
	Edge  sim.Edge
	Color sim.Color
}

func (m MoveRecord) String() string {
	return fmt.Sprintf("%d. %v %v", m.Ply, m.Color, m.Edge)
}

type Game struct {
	id          uuid.UUID
	board       *sim.Board
	history     *arraystack.Stack
	turn        sim.Color
	termination sim.Termination
	logger      *zap.Logger
	onMove      func(MoveRecord)
}

// New creates a game on an empty board, red to move. A nil logger disables logging.
func New(logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		id:      uuid.New(),
		board:   sim.NewBoard(),
		history: arraystack.New(),
		turn:    sim.ColorRed,
	}
	g.logger = logger.With(zap.String("game", g.id.String()))
	return g
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the current position
func (g *Game) Board() *sim.Board {
	return g.board.Clone()
}

// Side to move
func (g *Game) Turn() sim.Color {
	return g.turn
}

func (g *Game) Termination() sim.Termination {
	return g.termination
}

func (g *Game) IsOver() bool {
	return g.termination != sim.TerminationNone
}

// Winner of a finished game, ColorNone while the game is running or on a draw
func (g *Game) Winner() sim.Color {
	return g.termination.Winner()
}

// Number of half-moves played
func (g *Game) Ply() int {
	return g.history.Size()
}

// Moves returns the history in the order it was played
func (g *Game) Moves() []MoveRecord {
	values := g.history.Values() // top of the stack first
	moves := make([]MoveRecord, len(values))
	for i, v := range values {
		moves[len(values)-1-i] = v.(MoveRecord)
	}
	return moves
}

// Attach a callback, called after every applied move
func (g *Game) OnMove(f func(MoveRecord)) *Game {
	g.onMove = f
	return g
}

// SetPosition loads a board from its notation, clearing the history.
// The side to move is inferred from the edge counts, so red must have as many
// edges as blue or one more.
func (g *Game) SetPosition(notation string) error {
	board, err := sim.FromNotation(notation)
	if err != nil {
		return err
	}
	if red, blue := board.Count(sim.ColorRed), board.Count(sim.ColorBlue); red != blue && red != blue+1 {
		return errors.Wrapf(sim.ErrInvalidNotation, "%d red and %d blue edges can't be reached by alternating moves", red, blue)
	}

	g.board = board
	g.history.Clear()
	g.turn = board.Turn()
	g.termination = sim.CheckTermination(board)
	return nil
}

// Play colors 'edge' for the side to move, then checks for the end of the game
func (g *Game) Play(edge sim.Edge) error {
	if g.IsOver() {
		return errors.Wrapf(ErrGameOver, "%v", g.termination)
	}

	if err := g.board.Play(edge, g.turn); err != nil {
		return errors.Wrapf(err, "illegal move for %v", g.turn)
	}

	rec := MoveRecord{Ply: g.history.Size() + 1, Edge: edge, Color: g.turn}
	g.history.Push(rec)
	g.turn = g.turn.Opponent()
	g.termination = sim.CheckTermination(g.board)

	g.logger.Debug("move played",
		zap.Int("ply", rec.Ply),
		zap.Stringer("color", rec.Color),
		zap.Int("edge", int(rec.Edge)),
		zap.Stringer("line", rec.Edge),
		zap.String("board", g.board.Notation()),
	)

	if g.IsOver() {
		g.logger.Debug("game over",
			zap.Stringer("result", g.termination),
			zap.Int("plies", g.history.Size()),
		)
	}

	if g.onMove != nil {
		g.onMove(rec)
	}
	return nil
}

// Undo takes back the last move
func (g *Game) Undo() error {
	v, ok := g.history.Pop()
	if !ok {
		return ErrNoHistory
	}

	rec := v.(MoveRecord)
	if err := g.board.Clear(rec.Edge); err != nil {
		panic(fmt.Sprintf("game: history out of sync with the board at %v: %v", rec, err))
	}
	g.turn = rec.Color
	g.termination = sim.CheckTermination(g.board)

	g.logger.Debug("move taken back", zap.Int("ply", rec.Ply), zap.Stringer("line", rec.Edge))
	return nil
}
