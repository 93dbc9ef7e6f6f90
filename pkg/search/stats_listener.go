package search

import "github.com/IlikeChooros/go-sim/pkg/sim"

// Statistics of the last search
type Stats struct {
	Player  sim.Color
	Depth   int
	Nodes   uint64
	Cutoffs uint64
	TimeMs  int
	Nps     uint64
	Move    Move
}

// Evaluation of a single root move
type RootLine struct {
	Edge  sim.Edge
	Score int
	Nodes uint64
}

// Listener function callback, will receive the statistics of the finished search
type ListenerFunc func(Stats)

// Called after each root move was searched, before pruning is decided
type RootListenerFunc func(RootLine)

type StatsListener struct {
	// called for every searched root move
	onRoot RootListenerFunc

	// called when the search finishes
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root move callback, the search is single-threaded so no synchronization is needed
func (listener *StatsListener) OnRoot(onRoot RootListenerFunc) *StatsListener {
	listener.onRoot = onRoot
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}
