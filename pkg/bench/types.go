package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

type VersusArenaStats struct {
	p1Wins    uint32
	p2Wins    uint32
	draws     uint32
	redWins   uint32
	blueWins  uint32
	totalPlys uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

// Games won by the side moving first (red)
func (vas *VersusArenaStats) RedWins() int {
	return int(atomic.LoadUint32(&vas.redWins))
}

func (vas *VersusArenaStats) BlueWins() int {
	return int(atomic.LoadUint32(&vas.blueWins))
}

// Average game length in half-moves
func (vas *VersusArenaStats) AvgPlies() float64 {
	total := vas.Total()
	if total == 0 {
		return 0
	}
	return float64(atomic.LoadUint32(&vas.totalPlys)) / float64(total)
}

func (vas *VersusArenaStats) record(result VersusMatchResult, winner sim.Color, plies int) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	switch winner {
	case sim.ColorRed:
		atomic.AddUint32(&vas.redWins, 1)
	case sim.ColorBlue:
		atomic.AddUint32(&vas.blueWins, 1)
	}
	atomic.AddUint32(&vas.totalPlys, uint32(plies))
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []sim.Edge
	Result        VersusMatchResult
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames int     `json:"total_games"`
	P1Wins     int     `json:"player1_wins"`
	P2Wins     int     `json:"player2_wins"`
	Draws      int     `json:"draws"`
	RedWins    int     `json:"red_wins"`
	BlueWins   int     `json:"blue_wins"`
	AvgPlies   float64 `json:"avg_plies"`
	Workers    int     `json:"workers"`
	P1Name     string  `json:"player1_name"`
	P2Name     string  `json:"player2_name"`
}

// maps the winning color to the agent, given which one played red
func toAgentResult(winner sim.Color, p1Red bool) VersusMatchResult {
	if winner == sim.ColorNone {
		return VersusDraw
	}

	if p1Red == (winner == sim.ColorRed) {
		return VersusPl1Win
	}
	return VersusPl2Win
}
