package search

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

type Limits struct {
	Depth int
	Alpha int
	Beta  int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDepthLimit int = 3
	MaxDepthLimit     int = sim.NumEdges

	// Full alpha-beta window, extremes of the score type
	ScoreMin int = math.MinInt
	ScoreMax int = math.MaxInt
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth: DefaultDepthLimit,
		Alpha: ScoreMin,
		Beta:  ScoreMax,
	}
}

// Set the number of plies to search, clamped to [0, 15]
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = min(max(depth, 0), MaxDepthLimit)
	return l
}

// Set the initial alpha-beta window
func (l *Limits) SetWindow(alpha, beta int) *Limits {
	l.Alpha = alpha
	l.Beta = beta
	return l
}

// Whether the window is the full (-inf, +inf) range
func (l *Limits) FullWindow() bool {
	return l.Alpha == ScoreMin && l.Beta == ScoreMax
}
