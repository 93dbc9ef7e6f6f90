package search

import (
	"fmt"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

// Move chosen by the search, Score is -1 for loss, 0 for draw, 1 for win,
// Edge is sim.NoEdge when no move was searched (depth 0 or full board)
type Move struct {
	Edge  sim.Edge `json:"edge"`
	Score int      `json:"score"`
}

func (m Move) String() string {
	if m.Edge == sim.NoEdge {
		return fmt.Sprintf("none (score %d)", m.Score)
	}
	return fmt.Sprintf("%d/%v (score %d)", m.Edge, m.Edge, m.Score)
}

// Seed for the best score, the extreme the current player is trying to improve on.
// Red maximizes, blue minimizes.
func initScore(player sim.Color) int {
	switch player {
	case sim.ColorA:
		return ScoreMin
	case sim.ColorB:
		return ScoreMax
	}
	panic(fmt.Sprintf("search: invalid player %v, expected red or blue", player))
}

// Single depth-first walk over one board. The board is borrowed for the duration of the
// call, every probing move is reverted before the next sibling is tried.
type searcher struct {
	board     *sim.Board
	prune     bool
	rootDepth int
	nodes     uint64
	cutoffs   uint64
	onRoot    func(sim.Edge, int)
}

func (s *searcher) bestMove(player sim.Color, depth, alpha, beta int) Move {
	s.nodes++
	best := Move{Edge: sim.NoEdge, Score: initScore(player)}

	if depth == 0 || s.board.IsFull() {
		best.Score = sim.Evaluate(s.board, player)
		return best
	}

	opponent := player.Opponent()

	for i := range sim.NumEdges {
		edge := sim.Edge(i)
		if s.board.At(edge) != sim.ColorNone {
			continue
		}

		reply := s.probe(edge, player, opponent, depth, alpha, beta)
		if s.onRoot != nil && depth == s.rootDepth {
			s.onRoot(edge, reply.Score)
		}

		// Strict comparisons, earlier edges win ties
		if player == sim.ColorA && reply.Score > best.Score {
			best.Edge = edge
			best.Score = reply.Score
			alpha = reply.Score
		} else if player == sim.ColorB && reply.Score < best.Score {
			best.Edge = edge
			best.Score = reply.Score
			beta = reply.Score
		}

		if s.prune && alpha >= beta {
			s.cutoffs++
			break
		}
	}

	return best
}

// Color the edge, search the reply and take the edge back
func (s *searcher) probe(edge sim.Edge, player, opponent sim.Color, depth, alpha, beta int) Move {
	s.board.Apply(edge, player)
	defer s.board.Revert(edge)
	return s.bestMove(opponent, depth-1, alpha, beta)
}

// BestMove runs minimax with alpha-beta pruning for player, searching 'depth' plies.
// Pass ScoreMin, ScoreMax as the initial window. The board is modified during the
// search and restored before returning. Panics if player is not red or blue.
func BestMove(board *sim.Board, player sim.Color, depth, alpha, beta int) Move {
	s := searcher{board: board, prune: true, rootDepth: depth}
	return s.bestMove(player, depth, alpha, beta)
}

// Minimax visits the same tree as BestMove without any pruning, the returned
// score is always equal to BestMove's with the full window
func Minimax(board *sim.Board, player sim.Color, depth int) Move {
	s := searcher{board: board, rootDepth: depth}
	return s.bestMove(player, depth, ScoreMin, ScoreMax)
}

// Number of nodes BestMove (prune=true) or Minimax (prune=false) visits, including the root
func CountNodes(board *sim.Board, player sim.Color, depth int, prune bool) uint64 {
	s := searcher{board: board, prune: prune, rootDepth: depth}
	s.bestMove(player, depth, ScoreMin, ScoreMax)
	return s.nodes
}
