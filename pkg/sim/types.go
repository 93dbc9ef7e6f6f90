package sim

import (
	"fmt"
	"strings"
)

// Color is the state of a single edge, and also identifies a player.
type Color uint8

// Edge is an index into the board, 0 for the line 12, 14 for the line 56
type Edge int8

// Number of vertices of the complete graph
const NumVertices = 6

// Number of edges, C(6, 2)
const NumEdges = NumVertices * (NumVertices - 1) / 2

// Number of 3-cycles in K6, C(6, 3)
const NumTriangles = 20

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
)

// Player aliases, the maximizing side is red
const (
	ColorA = ColorRed
	ColorB = ColorBlue
)

const (
	NoEdge Edge = -1
)

// Valid reports whether c is one of the two player colors
func (c Color) Valid() bool {
	return c == ColorRed || c == ColorBlue
}

// Opponent returns the other player's color, ColorNone stays ColorNone
func (c Color) Opponent() Color {
	switch c {
	case ColorRed:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	}
	return ColorNone
}

// Symbol used in the board notation
func (c Color) Rune() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	}
	return '.'
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorNone:
		return "none"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor accepts "red", "blue" and their first letters (case insensitive)
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, nil
	case "blue", "b":
		return ColorBlue, nil
	}
	return ColorNone, invalidColorError(s)
}

// Valid reports whether e indexes one of the 15 edges
func (e Edge) Valid() bool {
	return e >= 0 && e < NumEdges
}

// Vertex pairs of each edge, in canonical (lexicographic) order
var _edgeVertices = func() (table [NumEdges][2]int) {
	e := 0
	for i := 1; i <= NumVertices; i++ {
		for j := i + 1; j <= NumVertices; j++ {
			table[e] = [2]int{i, j}
			e++
		}
	}
	return table
}()

// Vertices returns the two endpoints (1-based) of the edge
func (e Edge) Vertices() (int, int) {
	if !e.Valid() {
		panic(fmt.Sprintf("sim: edge index %d out of range [0, %d]", e, NumEdges-1))
	}
	v := _edgeVertices[e]
	return v[0], v[1]
}

// String returns the vertex pair name of the edge, e.g "12" for edge 0
func (e Edge) String() string {
	if !e.Valid() {
		return "--"
	}
	a, b := e.Vertices()
	return fmt.Sprintf("%d%d", a, b)
}

// EdgeBetween returns the edge connecting vertices a and b (1-based, any order)
func EdgeBetween(a, b int) (Edge, error) {
	if a > b {
		a, b = b, a
	}
	if a < 1 || b > NumVertices || a == b {
		return NoEdge, invalidEdgeError(fmt.Sprintf("%d%d", a, b))
	}
	for e := range _edgeVertices {
		if _edgeVertices[e][0] == a && _edgeVertices[e][1] == b {
			return Edge(e), nil
		}
	}
	return NoEdge, invalidEdgeError(fmt.Sprintf("%d%d", a, b))
}

// ParseEdge reads either an edge index ("0" to "14") or a
// vertex pair ("12" to "56"). Two-digit strings are tried as an index first,
// so "12", "13" and "14" are the indices, pass "p12" to force the pair form.
func ParseEdge(s string) (Edge, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoEdge, invalidEdgeError(s)
	}

	if strings.HasPrefix(s, "p") {
		return parsePair(s[1:])
	}

	var idx int
	if _, err := fmt.Sscanf(s, "%d", &idx); err == nil && fmt.Sprint(idx) == s {
		if idx >= 0 && idx < NumEdges {
			return Edge(idx), nil
		}
		if len(s) == 2 {
			return parsePair(s)
		}
	}
	return NoEdge, invalidEdgeError(s)
}

func parsePair(s string) (Edge, error) {
	if len(s) != 2 || s[0] < '1' || s[0] > '9' || s[1] < '1' || s[1] > '9' {
		return NoEdge, invalidEdgeError(s)
	}
	return EdgeBetween(int(s[0]-'0'), int(s[1]-'0'))
}
