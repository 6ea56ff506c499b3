package swallow

// Snapshot captures the simulation state for determinism testing and replay
// verification.
type Snapshot struct {
	Tick            uint64
	Seed            int64
	Speed           int
	TimeLeft        float64
	Collected       int
	HP              int
	SwallowX        int
	SwallowY        int
	Facing          Direction
	Hunters         int
	Stars           int
	HunterSpawnTick int
	StarSpawnTick   int
	Result          Result
	Score           int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		Seed:            g.seed,
		Speed:           g.speed,
		TimeLeft:        g.timeLeft,
		Collected:       g.collected,
		Hunters:         g.hunters.Len(),
		Stars:           g.stars.Len(),
		HunterSpawnTick: g.hunterSpawnTick,
		StarSpawnTick:   g.starSpawnTick,
		Result:          g.result,
		Score:           g.score,
	}
	if s := g.swallow; s != nil {
		snap.HP = s.HP
		snap.SwallowX, snap.SwallowY = s.X, s.Y
		snap.Facing = s.Facing
	}
	return snap
}
