package sim

type Termination int

const (
	TerminationNone    Termination = 0
	TerminationRedWon  Termination = 1
	TerminationBlueWon Termination = 2
	TerminationDraw    Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationRedWon:
		return "red won"
	case TerminationBlueWon:
		return "blue won"
	case TerminationDraw:
		return "draw"
	}
	return "unknown"
}

// Winner returns the winning color, ColorNone for a draw or an unfinished game
func (t Termination) Winner() Color {
	switch t {
	case TerminationRedWon:
		return ColorRed
	case TerminationBlueWon:
		return ColorBlue
	}
	return ColorNone
}

// Every triangle of K6 as 3 edge indices, {ij, ik, jk} for i < j < k
var _triangles = [NumTriangles][3]Edge{
	{0, 1, 5}, {0, 2, 6}, {0, 3, 7}, {0, 4, 8},
	{1, 2, 9}, {1, 3, 10}, {1, 4, 11},
	{2, 3, 12}, {2, 4, 13},
	{3, 4, 14},
	{5, 6, 9}, {5, 7, 10}, {5, 8, 11},
	{6, 7, 12}, {6, 8, 13},
	{7, 8, 14},
	{9, 10, 12}, {9, 11, 13},
	{10, 11, 14},
	{12, 13, 14},
}

// Triangles returns a copy of the triangle table
func Triangles() [NumTriangles][3]Edge {
	return _triangles
}

// HasTriangle reports whether all three edges of some triangle have given color
func HasTriangle(b *Board, c Color) bool {
	// index directly, copying each [3]Edge slows this down noticeably
	for i := range NumTriangles {
		if b.edges[_triangles[i][0]] == c &&
			b.edges[_triangles[i][1]] == c &&
			b.edges[_triangles[i][2]] == c {
			return true
		}
	}
	return false
}

// OpponentFormedTriangle reports whether player's opponent completed a triangle
// of their own color, which under the Sim rule means player has won
func OpponentFormedTriangle(b *Board, player Color) bool {
	return HasTriangle(b, player.Opponent())
}

// HasWon is true exactly when a triangle of the other color exists
func HasWon(b *Board, player Color) bool {
	return OpponentFormedTriangle(b, player)
}

// PlayerWins is HasWon under a name without the double negative
func PlayerWins(b *Board, player Color) bool {
	return OpponentFormedTriangle(b, player)
}

// PlayerLoses reports whether player formed a triangle of their own color
func PlayerLoses(b *Board, player Color) bool {
	return OpponentFormedTriangle(b, player.Opponent())
}

// Evaluate scores the board for player: 1 on a win, -1 on a loss, 0 otherwise
func Evaluate(b *Board, player Color) int {
	if PlayerWins(b, player) {
		return 1
	} else if PlayerLoses(b, player) {
		return -1
	}
	return 0
}

// IsFull reports whether every edge is colored
func IsFull(b *Board) bool {
	return b.IsFull()
}

// Check whether the game is over. A side completing a triangle of its own color loses,
// if both colors somehow have one, red is checked first.
func CheckTermination(b *Board) Termination {
	if HasTriangle(b, ColorRed) {
		return TerminationBlueWon
	}
	if HasTriangle(b, ColorBlue) {
		return TerminationRedWon
	}
	if b.IsFull() {
		return TerminationDraw
	}
	return TerminationNone
}
