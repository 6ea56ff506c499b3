package swallow

import "fmt"

// Result is the outcome of a round.
type Result uint8

const (
	ResultPending Result = iota
	ResultWon
	ResultLost
	ResultQuit
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultWon:
		return "winner"
	case ResultLost:
		return "loser"
	case ResultQuit:
		return "quit"
	default:
		return fmt.Sprintf("result(%d)", uint8(r))
	}
}

// evaluate ends the round once the quota is met or the swallow runs out of
// time or health. A win is checked first so collecting the last star on the
// final tick still counts.
func (g *Game) evaluate() {
	switch {
	case g.collected >= g.level.StarQuota:
		g.result = ResultWon
	case g.timeLeft <= 0 || g.swallow.HP <= 0:
		g.result = ResultLost
	default:
		g.score = g.liveScore()
		return
	}
	g.running = false
	g.timeLeft = max(g.timeLeft, 0)
	g.swallow.HP = max(g.swallow.HP, 0)
	g.score = g.finalScore()
	g.logger.Info("round over",
		"level", g.level.Name,
		"result", g.result,
		"stars", g.collected,
		"hp", g.swallow.HP,
		"time", fmt.Sprintf("%.1f", g.timeLeft),
		"score", g.score,
	)
}

// liveScore is the running tally shown while the round is in progress.
func (g *Game) liveScore() int {
	return int(float64(g.collected) * g.level.Score.Stars)
}

// finalScore applies the win formula. A lost or abandoned round scores zero.
func (g *Game) finalScore() int {
	if g.result != ResultWon {
		return 0
	}
	w := g.level.Score
	total := float64(g.collected)*w.Stars +
		float64(g.swallow.HP)*w.Life +
		g.timeLeft*w.Time
	return int(total * float64(g.level.Number))
}
