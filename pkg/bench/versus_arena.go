package bench

import (
	"context"
	"math/rand"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-sim/pkg/game"
	"github.com/IlikeChooros/go-sim/pkg/search"
	"github.com/IlikeChooros/go-sim/pkg/sim"
)

/*
Arena benchmark subpackage, plays a series of games between two
search configurations. Every game gets its own board, so workers never share state
apart from the atomic counters.
*/

// Search settings of one side in the arena. Players swap colors between games,
// so each engine carries limits for both: an even depth as red, an odd one as blue.
type EngineConfig struct {
	Name string
	Red  *search.Limits
	Blue *search.Limits
}

func NewEngineConfig(name string, redDepth, blueDepth int) EngineConfig {
	return EngineConfig{
		Name: name,
		Red:  search.DefaultLimits().SetDepth(redDepth),
		Blue: search.DefaultLimits().SetDepth(blueDepth),
	}
}

func (c EngineConfig) limits(color sim.Color) *search.Limits {
	if color == sim.ColorRed {
		return c.Red
	}
	return c.Blue
}

// Validate checks that both colors get a depth the engine can play at
func (c EngineConfig) Validate() error {
	for _, color := range []sim.Color{sim.ColorRed, sim.ColorBlue} {
		limits := c.limits(color)
		if limits == nil {
			continue
		}
		if !search.ValidDepth(color, limits.Depth) {
			return errors.Wrapf(search.ErrInvalidDepth, "%s as %v at depth %d", c.Name, color, limits.Depth)
		}
	}
	return nil
}

type VersusArena struct {
	VersusArenaStats
	Player1  EngineConfig
	Player2  EngineConfig
	NGames   uint
	NThreads uint
	// Number of random moves played before the engines take over, the search
	// is deterministic, so without them there would only be 2 distinct games
	OpeningMoves int
	logger       *zap.Logger
	wg           sync.WaitGroup
	ctx          context.Context
	errMu        sync.Mutex
	err          error
}

func NewVersusArena(p1, p2 EngineConfig) *VersusArena {
	return &VersusArena{
		Player1:      p1,
		Player2:      p2,
		NGames:       100,
		NThreads:     2,
		OpeningMoves: 2,
		logger:       zap.NewNop(),
		ctx:          context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) WithLogger(logger *zap.Logger) *VersusArena {
	if logger != nil {
		va.logger = logger
	}
	return va
}

func (va *VersusArena) Setup(nGames, nThreads uint, openingMoves int) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
	va.OpeningMoves = min(max(openingMoves, 0), sim.NumEdges)
}

// Wait blocks until all workers are done, returns the first error a worker hit
func (va *VersusArena) Wait() error {
	va.wg.Wait()
	va.errMu.Lock()
	defer va.errMu.Unlock()
	return va.err
}

// Start distributes the games equally between worker goroutines, call Wait for the result.
// Invalid engine configs fail before any game is played, Wait reports the error.
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}
	for _, cfg := range []EngineConfig{va.Player1, va.Player2} {
		if err := cfg.Validate(); err != nil {
			va.setErr(err)
			return
		}
	}
	listener.OnStart()

	threads := max(va.NThreads, 1)
	nGames := va.NGames / threads
	rest := va.NGames % threads

	// main goroutine waits for the workers, then reports
	va.wg.Add(1)
	workers := sync.WaitGroup{}

	for i := range threads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		workers.Add(1)
		go func(id int, n int) {
			defer workers.Done()
			va.worker(id, n, listener)
		}(int(i), int(nGames+delta))
	}

	go func() {
		defer va.wg.Done()
		workers.Wait()
		listener.Summary(va.Summary())
		listener.OnEnd()
	}()
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames: va.Total(),
		P1Wins:     va.P1Wins(),
		P2Wins:     va.P2Wins(),
		Draws:      va.Draws(),
		RedWins:    va.RedWins(),
		BlueWins:   va.BlueWins(),
		AvgPlies:   va.AvgPlies(),
		Workers:    int(va.NThreads),
		P1Name:     va.Player1.Name,
		P2Name:     va.Player2.Name,
	}
}

func (va *VersusArena) setErr(err error) {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	if va.err == nil {
		va.err = err
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike) {
	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	local := VersusWorkerInfo{WorkerID: id, NGames: nGames}

Loop:
	for i := range nGames {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
		}

		// alternate colors, so both configurations start equally often
		p1Red := (i+id)%2 == 0
		result, moves, winner, err := va.playGame(r, p1Red, id, nGames, i, listener)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				va.setErr(errors.Wrapf(err, "worker %d game %d", id, i))
			}
			break
		}

		va.record(result, winner, len(moves))
		switch result {
		case VersusPl1Win:
			local.P1Wins++
		case VersusPl2Win:
			local.P2Wins++
		default:
			local.Draws++
		}

		local.FinishedGames = i + 1
		local.Moves = moves
		local.GameMoveNum = len(moves)
		local.Result = result
		listener.OnFinishedGame(local)
	}

	listener.OnFinishedWork(local)
}

func newEngine(color sim.Color, cfg EngineConfig) (*search.Engine, error) {
	engine, err := search.NewEngine(color)
	if err != nil {
		return nil, err
	}
	if l := cfg.limits(color); l != nil {
		limits := *l
		if err := engine.SetLimits(&limits); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func (va *VersusArena) playGame(r *rand.Rand, p1Red bool, workerId, nGames, finished int, listener ListenerLike) (VersusMatchResult, []sim.Edge, sim.Color, error) {
	redCfg, blueCfg := va.Player1, va.Player2
	if !p1Red {
		redCfg, blueCfg = blueCfg, redCfg
	}

	red, err := newEngine(sim.ColorRed, redCfg)
	if err != nil {
		return VersusDraw, nil, sim.ColorNone, err
	}
	blue, err := newEngine(sim.ColorBlue, blueCfg)
	if err != nil {
		return VersusDraw, nil, sim.ColorNone, err
	}

	g := game.New(va.logger)
	moves := make([]sim.Edge, 0, sim.NumEdges)
	g.OnMove(func(m game.MoveRecord) {
		moves = append(moves, m.Edge)
		listener.OnMoveMade(VersusWorkerInfo{
			WorkerID:      workerId,
			NGames:        nGames,
			FinishedGames: finished,
			GameMoveNum:   len(moves),
			Moves:         slices.Clone(moves),
		})
	})

	// random opening, stop early if it already decided the game
	for range va.OpeningMoves {
		if g.IsOver() {
			break
		}
		empty := g.Board().EmptyEdges()
		if err := g.Play(empty[r.Intn(len(empty))]); err != nil {
			return VersusDraw, moves, sim.ColorNone, err
		}
	}

	_, err = g.Run(va.ctx,
		game.NewEnginePlayer(redCfg.Name, red, va.logger),
		game.NewEnginePlayer(blueCfg.Name, blue, va.logger),
	)
	if err != nil {
		return VersusDraw, moves, sim.ColorNone, err
	}

	winner := g.Winner()
	return toAgentResult(winner, p1Red), moves, winner, nil
}
