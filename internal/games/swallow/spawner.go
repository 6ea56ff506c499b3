package swallow

import (
	"math"

	"github.com/vovakirdan/swallow/internal/core"
)

// Escalation limits for the hunter spawn period.
const (
	minHunterPeriod    = 5.0
	minSpawnReduction  = 0.2
	hunterPeriodFactor = 10
	starPeriodFactor   = 10
)

// HunterSpawnThreshold returns the current hunter spawn period in ticks.
// The period shrinks as the round goes on but never below five ticks.
func (g *Game) HunterSpawnThreshold() float64 {
	sp := g.level.Spawn
	base := sp.Hunter * hunterPeriodFactor
	reduction := 1.0
	if sp.EscalationFrequency > 0 {
		reduction = 1 - (g.Elapsed()/sp.EscalationFrequency)*sp.HunterEscalation
	}
	reduction = core.ClampF(reduction, minSpawnReduction, 1)
	return math.Max(minHunterPeriod, base*reduction)
}

// StarSpawnThreshold returns the star spawn period in ticks.
func (g *Game) StarSpawnThreshold() int {
	return int(g.level.Spawn.Star * starPeriodFactor)
}

// bonusBounces returns the extra bounces granted to hunters spawned now.
func (g *Game) bonusBounces() int {
	coeff := g.level.Spawn.BounceEscalation
	if coeff <= 0 {
		return 0
	}
	return int(g.Elapsed() / coeff)
}

func (g *Game) runHunterSpawner() {
	g.hunterSpawnTick++
	if float64(g.hunterSpawnTick) >= g.HunterSpawnThreshold() {
		g.hunterSpawnTick = 0
		g.spawnHunter()
	}
}

func (g *Game) runStarSpawner() {
	g.starSpawnTick++
	if g.starSpawnTick >= g.StarSpawnThreshold() {
		g.starSpawnTick = 0
		g.spawnStar()
	}
}

// spawnHunter places a random hunter kind on a random edge heading inward.
// The draw sequence is fixed so replays stay deterministic even when the
// chosen spot is occupied and the spawn is skipped.
func (g *Game) spawnHunter() {
	if len(g.catalog) == 0 {
		return
	}
	kind := g.rng.Intn(len(g.catalog))
	dir := Direction(g.rng.Intn(4))
	t := g.catalog[kind]

	maxR := max(g.grid.Rows()-t.H-2, 1)
	maxC := max(g.grid.Cols()-t.W-2, 1)
	var x, y int
	switch dir {
	case DirRight:
		x, y = 2, 2+g.rng.Intn(maxR)
	case DirLeft:
		x, y = maxC, 2+g.rng.Intn(maxR)
	case DirDown:
		x, y = 2+g.rng.Intn(maxC), 2
	case DirUp:
		x, y = 2+g.rng.Intn(maxC), maxR
	}

	h := &Hunter{
		Entity:    Entity{X: x, Y: y, W: t.W, H: t.H, Color: t.Color},
		Kind:      kind,
		Bounces:   t.Bounces + g.bonusBounces(),
		Damage:    t.Damage,
		BaseSpeed: t.Speed,
		State:     StateIdle,
	}
	h.Head(dir, t.Speed)
	if g.grid.Query(h.Bounds()) != TagEmpty {
		g.logger.Debug("hunter spawn skipped", "kind", t.Name, "x", x, "y", y)
		return
	}
	g.hunters.Add(h)
	g.place(h)
	g.logger.Debug("hunter spawned", "kind", t.Name, "dir", dir, "bounces", h.Bounces)
}
