package game

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

// Plays the scripted edges while they are free, then the lowest empty edge
type scriptedPlayer struct {
	script []sim.Edge
}

func (s *scriptedPlayer) Name() string { return "script" }

func (s *scriptedPlayer) NextMove(ctx context.Context, g *Game) (sim.Edge, error) {
	board := g.Board()
	for len(s.script) > 0 {
		edge := s.script[0]
		s.script = s.script[1:]
		if board.At(edge) == sim.ColorNone {
			return edge, nil
		}
	}
	empty := board.EmptyEdges()
	if len(empty) == 0 {
		return sim.NoEdge, ErrNoMove
	}
	return empty[0], nil
}

func newEnginePlayer(t *testing.T, color sim.Color, depth int) *EnginePlayer {
	t.Helper()
	engine, err := search.NewEngine(color)
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.SetLimits(search.DefaultLimits().SetDepth(depth)); err != nil {
		t.Fatal(err)
	}
	return NewEnginePlayer(color.String(), engine, nil)
}

func TestNewGame(t *testing.T) {
	g := New(nil)
	if g.ID() == uuid.Nil {
		t.Fatal("game without an id")
	}
	if g.Turn() != sim.ColorRed || g.IsOver() || g.Ply() != 0 {
		t.Fatalf("unexpected initial state: turn %v over %v ply %d", g.Turn(), g.IsOver(), g.Ply())
	}
	if g.Board().Notation() != sim.StartingPosition {
		t.Fatalf("board not empty: %s", g.Board().Notation())
	}
}

func TestPlayAndUndo(t *testing.T) {
	g := New(nil)
	var seen []MoveRecord
	g.OnMove(func(m MoveRecord) { seen = append(seen, m) })

	for _, e := range []sim.Edge{0, 14, 7} {
		if err := g.Play(e); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.Play(14); !errors.Is(err, sim.ErrEdgeTaken) {
		t.Fatalf("Play on a taken edge = %v", err)
	}
	if err := g.Play(15); !errors.Is(err, sim.ErrInvalidEdge) {
		t.Fatalf("Play out of range = %v", err)
	}

	moves := g.Moves()
	want := []MoveRecord{
		{Ply: 1, Edge: 0, Color: sim.ColorRed},
		{Ply: 2, Edge: 14, Color: sim.ColorBlue},
		{Ply: 3, Edge: 7, Color: sim.ColorRed},
	}
	if len(moves) != len(want) || len(seen) != len(want) {
		t.Fatalf("history %v, callbacks %v", moves, seen)
	}
	for i := range want {
		if moves[i] != want[i] || seen[i] != want[i] {
			t.Fatalf("move %d = %v (callback %v), want %v", i, moves[i], seen[i], want[i])
		}
	}
	if g.Turn() != sim.ColorBlue {
		t.Fatalf("turn %v, want blue", g.Turn())
	}

	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Turn() != sim.ColorRed || g.Board().At(7) != sim.ColorNone || g.Ply() != 2 {
		t.Fatalf("undo failed: turn %v board %s", g.Turn(), g.Board().Notation())
	}

	_ = g.Undo()
	_ = g.Undo()
	if err := g.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("Undo on empty history = %v", err)
	}
}

func TestGameOver(t *testing.T) {
	g := New(nil)
	// red: 12 13 23, blue: 45 46 fills in between
	for _, e := range []sim.Edge{0, 12, 1, 13, 5} {
		if err := g.Play(e); err != nil {
			t.Fatal(err)
		}
	}

	if !g.IsOver() || g.Winner() != sim.ColorBlue {
		t.Fatalf("red formed a triangle, got %v", g.Termination())
	}
	if err := g.Play(2); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Play after the end = %v", err)
	}

	// taking the losing move back reopens the game
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.IsOver() {
		t.Fatalf("game still over after undo: %v", g.Termination())
	}
}

func TestSetPosition(t *testing.T) {
	g := New(nil)
	_ = g.Play(3)

	if err := g.SetPosition("RB.............."); !errors.Is(err, sim.ErrInvalidNotation) {
		t.Fatalf("bad notation = %v", err)
	}
	if err := g.SetPosition("RBR............"); err != nil {
		t.Fatal(err)
	}
	if g.Turn() != sim.ColorBlue || g.Ply() != 0 {
		t.Fatalf("turn %v ply %d after SetPosition", g.Turn(), g.Ply())
	}

	for _, notation := range []string{"B..............", "RRR............", "RBB............"} {
		if err := g.SetPosition(notation); !errors.Is(err, sim.ErrInvalidNotation) {
			t.Errorf("SetPosition(%s) = %v, want ErrInvalidNotation", notation, err)
		}
	}
	if g.Board().Notation() != "RBR............" {
		t.Fatalf("rejected position changed the board: %s", g.Board().Notation())
	}
}

func TestReferenceGame(t *testing.T) {
	// red plays 0, 1, 2, 3 then whatever is free, blue searches 3 plies
	g := New(nil)
	red := &scriptedPlayer{script: []sim.Edge{0, 1, 2, 3}}
	blue := newEnginePlayer(t, sim.ColorBlue, 3)

	plies := 0
	g.OnMove(func(MoveRecord) { plies++ })

	result, err := g.Run(context.Background(), red, blue)
	if err != nil {
		t.Fatal(err)
	}
	if result == sim.TerminationNone || plies > sim.NumEdges {
		t.Fatalf("game did not terminate properly: %v after %d plies", result, plies)
	}
	if result != sim.CheckTermination(g.Board()) {
		t.Fatalf("result %v, board says %v", result, sim.CheckTermination(g.Board()))
	}
	t.Logf("result %v after %d plies: %s", result, plies, g.Board().Notation())
}

func TestFirstEngineMoveIsLegal(t *testing.T) {
	g := New(nil)
	_ = g.Play(0)
	blue := newEnginePlayer(t, sim.ColorBlue, 3)

	edge, err := blue.NextMove(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if !edge.Valid() || g.Board().At(edge) != sim.ColorNone {
		t.Fatalf("engine chose illegal edge %d", edge)
	}

	// not blue's turn
	_ = g.Play(edge)
	if _, err := blue.NextMove(context.Background(), g); err == nil {
		t.Fatal("engine moved out of turn")
	}
}

func TestEngineVsEngine(t *testing.T) {
	for _, depths := range [][2]int{{2, 1}, {2, 3}, {4, 3}} {
		g := New(nil)
		red, blue := newEnginePlayer(t, sim.ColorRed, depths[0]), newEnginePlayer(t, sim.ColorBlue, depths[1])
		result, err := g.Run(context.Background(), red, blue)
		if err != nil {
			t.Fatal(err)
		}
		if result == sim.TerminationNone || g.Ply() > sim.NumEdges {
			t.Fatalf("depths %v: %v after %d plies", depths, result, g.Ply())
		}
	}
}

// Whoever the engine is facing, it never closes its own triangle while another edge is safe
func TestEngineAvoidsOwnTriangle(t *testing.T) {
	safeEdge := func(g *Game) bool {
		board := g.Board()
		for _, e := range board.EmptyEdges() {
			board.Apply(e, g.Turn())
			safe := !sim.HasTriangle(board, g.Turn())
			board.Revert(e)
			if safe {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name   string
		engine sim.Color
		depth  int
	}{
		{"red depth 2", sim.ColorRed, 2},
		{"red depth 4", sim.ColorRed, 4},
		{"blue depth 1", sim.ColorBlue, 1},
		{"blue depth 3", sim.ColorBlue, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// scripted opponents starting from different edges
			for first := range sim.NumEdges {
				g := New(nil)
				engine := newEnginePlayer(t, tt.engine, tt.depth)
				opponent := &scriptedPlayer{script: []sim.Edge{sim.Edge(first)}}

				for !g.IsOver() {
					if g.Turn() != tt.engine {
						edge, _ := opponent.NextMove(context.Background(), g)
						if err := g.Play(edge); err != nil {
							t.Fatal(err)
						}
						continue
					}

					hadSafe := safeEdge(g)
					edge, err := engine.NextMove(context.Background(), g)
					if err != nil {
						t.Fatal(err)
					}
					if err := g.Play(edge); err != nil {
						t.Fatal(err)
					}
					if hadSafe && g.Winner() == tt.engine.Opponent() {
						t.Fatalf("opening %d: engine closed its own triangle with %v: %s",
							first, edge, g.Board().Notation())
					}
				}
			}
		})
	}

	// red holds 12 and 13, so 23 closes its triangle
	g := New(nil)
	if err := g.SetPosition("RR..........BB."); err != nil {
		t.Fatal(err)
	}
	edge, err := newEnginePlayer(t, sim.ColorRed, 2).NextMove(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Play(edge); err != nil {
		t.Fatal(err)
	}
	if g.IsOver() {
		t.Fatalf("red played %v and ended the game: %v", edge, g.Termination())
	}
}

func TestHumanPlayer(t *testing.T) {
	g := New(nil)
	_ = g.Play(0)
	_ = g.Play(1)

	out := &bytes.Buffer{}
	human := NewHumanPlayer("human", strings.NewReader("abc\n0\n99\n5\n"), out)

	edge, err := human.NextMove(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if edge != 5 {
		t.Fatalf("human move %d, want 5", edge)
	}
	if n := strings.Count(out.String(), "Enter the line number"); n != 4 {
		t.Fatalf("prompted %d times, want 4:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "already red") {
		t.Fatalf("no taken-edge message:\n%s", out.String())
	}

	if _, err := human.NextMove(context.Background(), g); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("NextMove on closed input = %v", err)
	}
}

func TestRunStopsOnError(t *testing.T) {
	g := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	human := NewHumanPlayer("human", strings.NewReader("0\n"), &bytes.Buffer{})
	if _, err := g.Run(ctx, human, newEnginePlayer(t, sim.ColorBlue, 1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run with a cancelled context = %v", err)
	}
	if g.Ply() != 0 {
		t.Fatalf("moves played after cancellation: %d", g.Ply())
	}
}
