package bench

import (
	"go.uber.org/zap"
)

// Receives arena progress, OnMoveMade and OnFinishedGame are called from worker
// goroutines, so implementations must be safe for concurrent use
type ListenerLike interface {
	OnStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	OnEnd()
}

type DefaultListener struct{}

func (DefaultListener) OnStart()                        {}
func (DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener) Summary(VersusSummaryInfo)       {}
func (DefaultListener) OnEnd()                          {}

// LogListener reports finished games and the summary through zap
type LogListener struct {
	DefaultListener
	logger *zap.Logger
}

func NewLogListener(logger *zap.Logger) *LogListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogListener{logger: logger}
}

func (l *LogListener) OnStart() {
	l.logger.Info("arena started")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug("game finished",
		zap.Int("worker", info.WorkerID),
		zap.Int("game", info.FinishedGames),
		zap.Int("of", info.NGames),
		zap.Stringer("result", info.Result),
		zap.Int("plies", info.GameMoveNum),
	)
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Info("worker finished",
		zap.Int("worker", info.WorkerID),
		zap.Int("games", info.NGames),
		zap.Int("p1_wins", info.P1Wins),
		zap.Int("p2_wins", info.P2Wins),
		zap.Int("draws", info.Draws),
	)
}

func (l *LogListener) Summary(info VersusSummaryInfo) {
	l.logger.Info("arena summary",
		zap.String("player1", info.P1Name),
		zap.String("player2", info.P2Name),
		zap.Int("games", info.TotalGames),
		zap.Int("p1_wins", info.P1Wins),
		zap.Int("p2_wins", info.P2Wins),
		zap.Int("draws", info.Draws),
		zap.Int("red_wins", info.RedWins),
		zap.Int("blue_wins", info.BlueWins),
		zap.Float64("avg_plies", info.AvgPlies),
	)
}
