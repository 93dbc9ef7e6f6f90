package sim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Board records the colors of the 15 lines, board[0] = color of 12,
// board[1] = color of 13, ..., board[14] = color of 56
type Board struct {
	edges [NumEdges]Color
}

// NewBoard returns an all-empty board
func NewBoard() *Board {
	return &Board{}
}

func checkEdge(e Edge) {
	if !e.Valid() {
		panic(fmt.Sprintf("sim: edge index %d out of range [0, %d]", e, NumEdges-1))
	}
}

// At returns the color of given edge, panics if the index is out of range
func (b *Board) At(e Edge) Color {
	checkEdge(e)
	return b.edges[e]
}

// Play colors an empty edge, validating the index, color and occupancy
func (b *Board) Play(e Edge, c Color) error {
	if !e.Valid() {
		return errors.Wrapf(ErrInvalidEdge, "index %d out of range [0, %d]", e, NumEdges-1)
	}
	if !c.Valid() {
		return errors.Wrapf(ErrInvalidColor, "cannot color edge %v with %v", e, c)
	}
	if b.edges[e] != ColorNone {
		return errors.Wrapf(ErrEdgeTaken, "edge %d (%v) is %v", e, e, b.edges[e])
	}
	b.edges[e] = c
	return nil
}

// Clear resets a colored edge back to empty (used to take back moves)
func (b *Board) Clear(e Edge) error {
	if !e.Valid() {
		return errors.Wrapf(ErrInvalidEdge, "index %d out of range [0, %d]", e, NumEdges-1)
	}
	if b.edges[e] == ColorNone {
		return errors.Wrapf(ErrEdgeEmpty, "edge %d (%v)", e, e)
	}
	b.edges[e] = ColorNone
	return nil
}

// Apply colors the edge without validation, the caller must guarantee
// the edge is valid and empty, and must call Revert before anyone else sees the board.
// Meant for the search, which probes moves and takes them back.
func (b *Board) Apply(e Edge, c Color) {
	b.edges[e] = c
}

// Revert undoes Apply
func (b *Board) Revert(e Edge) {
	b.edges[e] = ColorNone
}

// IsFull reports whether no empty edges remain
func (b *Board) IsFull() bool {
	for i := range NumEdges {
		if b.edges[i] == ColorNone {
			return false
		}
	}
	return true
}

// Count returns the number of edges with given color
func (b *Board) Count(c Color) int {
	n := 0
	for i := range NumEdges {
		if b.edges[i] == c {
			n++
		}
	}
	return n
}

// EmptyEdges lists the uncolored edges in ascending order
func (b *Board) EmptyEdges() []Edge {
	moves := make([]Edge, 0, NumEdges)
	for i := range NumEdges {
		if b.edges[i] == ColorNone {
			moves = append(moves, Edge(i))
		}
	}
	return moves
}

// Turn infers the side to move, assuming red began and players alternated
func (b *Board) Turn() Color {
	if b.Count(ColorRed) > b.Count(ColorBlue) {
		return ColorBlue
	}
	return ColorRed
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Edges returns a copy of the edge states
func (b *Board) Edges() [NumEdges]Color {
	return b.edges
}
