package search

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrNilBoard      = errors.New("nil board")
	ErrBoardFull     = errors.New("board is full, no move to search")
	ErrInvalidDepth  = errors.New("search depth does not end on red to move")
)

// ValidDepth reports whether a search of 'depth' plies started by player reaches its
// leaves with red to move. Leaves are scored for the side to move while red always
// maximizes, so at any other depth the engine steers into its own triangles.
// Depth 0 searches nothing and is always valid.
func ValidDepth(player sim.Color, depth int) bool {
	if depth == 0 {
		return true
	}
	leaf := player
	if depth%2 == 1 {
		leaf = player.Opponent()
	}
	return leaf == sim.ColorRed
}

// DefaultDepth is the deepest valid depth not above DefaultDepthLimit
func DefaultDepth(player sim.Color) int {
	if ValidDepth(player, DefaultDepthLimit) {
		return DefaultDepthLimit
	}
	return DefaultDepthLimit - 1
}

// Near the end the board fills before the depth runs out, the search is shortened so
// the full-board leaves still have red to move. A single empty edge is the only move anyway.
func searchDepth(player sim.Color, depth, empty int) int {
	d := min(depth, empty)
	if d > 1 && !ValidDepth(player, d) {
		d--
	}
	return d
}

// Whether coloring 'edge' completes a triangle of player's own color
func completesTriangle(board *sim.Board, edge sim.Edge, player sim.Color) bool {
	board.Apply(edge, player)
	defer board.Revert(edge)
	return sim.HasTriangle(board, player)
}

// The best root line that doesn't complete player's own triangle, earlier edges win ties
func bestSafeLine(board *sim.Board, player sim.Color, lines []RootLine) (Move, bool) {
	best := Move{Edge: sim.NoEdge, Score: initScore(player)}
	for _, line := range lines {
		if completesTriangle(board, line.Edge, player) {
			continue
		}
		if best.Edge == sim.NoEdge ||
			(player == sim.ColorRed && line.Score > best.Score) ||
			(player == sim.ColorBlue && line.Score < best.Score) {
			best = Move{Edge: line.Edge, Score: line.Score}
		}
	}
	return best, best.Edge != sim.NoEdge
}

// Engine picks moves for one side, with fixed limits between searches
type Engine struct {
	player   sim.Color
	limits   *Limits
	listener *StatsListener
	timer    *_Timer
	stats    Stats
}

// NewEngine creates an engine playing 'player' with DefaultLimits at DefaultDepth,
// anything other than red or blue is rejected here, so Search never sees a bad color
func NewEngine(player sim.Color) (*Engine, error) {
	if !player.Valid() {
		return nil, errors.Wrapf(ErrInvalidPlayer, "%v", player)
	}

	return &Engine{
		player:   player,
		limits:   DefaultLimits().SetDepth(DefaultDepth(player)),
		listener: &StatsListener{},
		timer:    _NewTimer(),
	}, nil
}

func (e *Engine) Player() sim.Color {
	return e.player
}

// SetLimits rejects depths that are not ValidDepth for the engine's player
func (e *Engine) SetLimits(limits *Limits) error {
	if limits == nil {
		return errors.New("nil limits")
	}
	if !ValidDepth(e.player, limits.Depth) {
		return errors.Wrapf(ErrInvalidDepth, "%v at depth %d", e.player, limits.Depth)
	}
	e.limits = limits
	return nil
}

func (e *Engine) Limits() *Limits {
	return e.limits
}

func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

// Statistics of the last finished search
func (e *Engine) Stats() Stats {
	return e.stats
}

// Search returns the best move for the engine's player on given board.
// The board is restored before returning. With depth 0 no move is chosen and
// Move.Edge is sim.NoEdge. Unlike BestMove, a full board is reported as ErrBoardFull,
// since the caller asked for a move that doesn't exist. A move completing the engine's
// own triangle is only returned when every other edge does the same.
func (e *Engine) Search(board *sim.Board) (Move, error) {
	if board == nil {
		return Move{Edge: sim.NoEdge}, ErrNilBoard
	}
	if board.IsFull() {
		return Move{Edge: sim.NoEdge, Score: sim.Evaluate(board, e.player)}, ErrBoardFull
	}

	depth := searchDepth(e.player, e.limits.Depth, len(board.EmptyEdges()))
	s := searcher{board: board, prune: true, rootDepth: depth}

	// nodes under each root move, as a difference of the running counter
	var lines []RootLine
	last := uint64(1)
	onRoot := e.listener.onRoot
	s.onRoot = func(edge sim.Edge, score int) {
		line := RootLine{Edge: edge, Score: score, Nodes: s.nodes - last}
		last = s.nodes
		lines = append(lines, line)
		if onRoot != nil {
			onRoot(line)
		}
	}

	e.timer.Reset()
	move := s.bestMove(e.player, depth, e.limits.Alpha, e.limits.Beta)
	elapsed := e.timer.Deltatime()

	if move.Edge != sim.NoEdge && completesTriangle(board, move.Edge, e.player) {
		if safe, ok := bestSafeLine(board, e.player, lines); ok {
			move = safe
		}
	}

	e.stats = Stats{
		Player:  e.player,
		Depth:   depth,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
		TimeMs:  elapsed,
		Nps:     s.nodes * 1000 / uint64(elapsed),
		Move:    move,
	}

	if e.listener.onStop != nil {
		e.listener.onStop(e.stats)
	}
	return move, nil
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Player=%v, Limits=%v, LastMove=%v, Nodes=%d}",
		e.player, e.limits, e.stats.Move, e.stats.Nodes)
}
