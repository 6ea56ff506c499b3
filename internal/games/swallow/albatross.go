package swallow

import "github.com/vovakirdan/swallow/internal/core"

// safeZonePad is the clearance the albatross keeps around a drop-off point.
const safeZonePad = 3

// callAlbatross relocates the swallow to a random safe spot if the
// maneuver is off cooldown. It reports whether the swallow moved.
func (g *Game) callAlbatross() bool {
	if g.albatrossCooldown > 0 {
		return false
	}
	s := g.swallow
	cols, rows := g.grid.Cols(), g.grid.Rows()
	for i := 0; i < g.level.Albatross.Attempts; i++ {
		tx := 2 + g.rng.Intn(max(cols-10, 1))
		ty := 2 + g.rng.Intn(max(rows-10, 1))
		dest := core.NewRect(tx, ty, s.W, s.H)
		if !g.safeZone(dest) {
			continue
		}
		g.erase(s)
		s.X, s.Y = tx, ty
		g.place(s)
		g.albatrossCooldown = g.level.Albatross.Cooldown
		g.logger.Debug("albatross relocated swallow", "x", tx, "y", ty)
		return true
	}
	g.logger.Debug("albatross found no safe zone")
	return false
}

// safeZone reports whether r, padded on every side, sits inside the board
// interior and is entirely Empty.
func (g *Game) safeZone(r core.Rect) bool {
	z := r.Expand(safeZonePad)
	if z.X < 2 || z.Y < 2 || z.Right() >= g.grid.Cols()-2 || z.Bottom() >= g.grid.Rows()-2 {
		return false
	}
	return g.grid.Query(z) == TagEmpty
}
