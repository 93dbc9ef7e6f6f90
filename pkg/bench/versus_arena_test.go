package bench

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

type countingListener struct {
	DefaultListener
	mu       sync.Mutex
	moves    int
	games    int
	workers  int
	summary  VersusSummaryInfo
	started  bool
	finished bool
}

func (c *countingListener) OnStart() { c.started = true }
func (c *countingListener) OnEnd()   { c.finished = true }

func (c *countingListener) OnMoveMade(VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moves++
}

func (c *countingListener) OnFinishedGame(info VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games++
}

func (c *countingListener) OnFinishedWork(VersusWorkerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.workers++
}

func (c *countingListener) Summary(info VersusSummaryInfo) {
	c.summary = info
}

func newArena() *VersusArena {
	return NewVersusArena(
		NewEngineConfig("shallow", 2, 1),
		NewEngineConfig("deep", 4, 3),
	)
}

func TestVersusArena(t *testing.T) {
	arena := newArena()
	arena.Setup(9, 2, 2)

	listener := &countingListener{}
	arena.Start(listener)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	if arena.Total() != 9 {
		t.Fatalf("played %d games, want 9", arena.Total())
	}
	if arena.RedWins()+arena.BlueWins()+arena.Draws() != arena.Total() {
		t.Fatalf("color stats %d+%d+%d do not add up to %d", arena.RedWins(), arena.BlueWins(), arena.Draws(), arena.Total())
	}
	if plies := arena.AvgPlies(); plies < 3 || plies > sim.NumEdges {
		t.Fatalf("average game length %.2f out of range", plies)
	}

	if !listener.started || !listener.finished || listener.games != 9 || listener.workers != 2 {
		t.Fatalf("listener saw started=%v finished=%v games=%d workers=%d",
			listener.started, listener.finished, listener.games, listener.workers)
	}
	if listener.summary.TotalGames != 9 || listener.summary.P1Name != "shallow" {
		t.Fatalf("summary %+v", listener.summary)
	}
	if listener.moves != int(arena.totalPlys) {
		t.Fatalf("%d moves reported, %d recorded", listener.moves, arena.totalPlys)
	}
	t.Logf("summary %+v", listener.summary)
}

func TestVersusArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := newArena().WithContext(ctx)
	arena.Setup(4, 2, 0)
	arena.Start(nil)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}
	if arena.Total() != 0 {
		t.Fatalf("played %d games after cancellation", arena.Total())
	}
}

func TestVersusArenaBadLimits(t *testing.T) {
	arena := NewVersusArena(
		NewEngineConfig("shallow", 2, 1),
		NewEngineConfig("wrong", 3, 3),
	)
	arena.Setup(2, 1, 0)

	listener := &countingListener{}
	arena.Start(listener)
	if err := arena.Wait(); !errors.Is(err, search.ErrInvalidDepth) {
		t.Fatalf("Wait = %v, want ErrInvalidDepth", err)
	}
	if listener.started || arena.Total() != 0 {
		t.Fatalf("arena started with an invalid config: %d games", arena.Total())
	}
}

func TestEngineConfigValidate(t *testing.T) {
	tests := []struct {
		red, blue int
		valid     bool
	}{
		{2, 1, true},
		{4, 3, true},
		{0, 1, true},
		{3, 1, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		err := NewEngineConfig("engine", tt.red, tt.blue).Validate()
		if tt.valid != (err == nil) {
			t.Errorf("Validate(red %d, blue %d) = %v", tt.red, tt.blue, err)
		}
	}
}

// Every move of every arena game: when the mover had an edge that keeps its own color
// triangle-free, it did not close a triangle of its own color
func TestVersusArenaEnginesAvoidOwnTriangles(t *testing.T) {
	arena := newArena()
	arena.Setup(8, 2, 2)

	listener := &gameRecorder{}
	arena.Start(listener)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	for _, moves := range listener.games {
		board := sim.NewBoard()
		color := sim.ColorRed
		for ply, edge := range moves {
			hadSafe := false
			for _, e := range board.EmptyEdges() {
				board.Apply(e, color)
				if !sim.HasTriangle(board, color) {
					hadSafe = true
				}
				board.Revert(e)
			}

			if err := board.Play(edge, color); err != nil {
				t.Fatal(err)
			}
			// the opening is random
			if ply >= arena.OpeningMoves && hadSafe && sim.HasTriangle(board, color) {
				t.Fatalf("%v closed its own triangle with %v while a safe edge was left: %s",
					color, edge, board.Notation())
			}
			color = color.Opponent()
		}
	}
}

type gameRecorder struct {
	DefaultListener
	mu    sync.Mutex
	games [][]sim.Edge
}

func (g *gameRecorder) OnFinishedGame(info VersusWorkerInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.games = append(g.games, info.Moves)
}

// Appends to the reported moves, which must not leak into the running game
type appendingListener struct {
	DefaultListener
	extended [][]sim.Edge
	infos    []VersusWorkerInfo
}

func (a *appendingListener) OnMoveMade(info VersusWorkerInfo) {
	a.infos = append(a.infos, info)
	a.extended = append(a.extended, append(info.Moves, sim.NoEdge))
}

func TestVersusArenaMovesAreCopied(t *testing.T) {
	arena := newArena()
	arena.Setup(3, 1, 2)

	listener := &appendingListener{}
	arena.Start(listener)
	if err := arena.Wait(); err != nil {
		t.Fatal(err)
	}

	if len(listener.infos) == 0 {
		t.Fatal("no moves reported")
	}
	for i, info := range listener.infos {
		if len(info.Moves) != info.GameMoveNum {
			t.Fatalf("move %d: %d moves reported, GameMoveNum %d", i, len(info.Moves), info.GameMoveNum)
		}
		if ext := listener.extended[i]; ext[len(ext)-1] != sim.NoEdge {
			t.Fatalf("move %d: later moves overwrote the reported list: %v", i, ext)
		}
	}
}

func TestToAgentResult(t *testing.T) {
	tests := []struct {
		winner sim.Color
		p1Red  bool
		want   VersusMatchResult
	}{
		{sim.ColorRed, true, VersusPl1Win},
		{sim.ColorRed, false, VersusPl2Win},
		{sim.ColorBlue, true, VersusPl2Win},
		{sim.ColorBlue, false, VersusPl1Win},
		{sim.ColorNone, true, VersusDraw},
	}
	for _, tt := range tests {
		if got := toAgentResult(tt.winner, tt.p1Red); got != tt.want {
			t.Errorf("toAgentResult(%v, %v) = %v, want %v", tt.winner, tt.p1Red, got, tt.want)
		}
	}
}
