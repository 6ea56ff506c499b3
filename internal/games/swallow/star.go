package swallow

import "github.com/vovakirdan/swallow/internal/core"

// Stars fall once every starMoveTicks ticks.
const starMoveTicks = 4

// starShade returns the flicker color for a star animation frame.
// Shades ramp up and back down over an eight-step cycle.
func starShade(frame int) core.Color {
	cycle := (frame / 2) % 8
	offset := cycle
	if cycle > 4 {
		offset = 8 - cycle
	}
	return core.ColorYellow1 + core.Color(offset)
}

// updateStars moves every star one step on its cadence. A star whose next
// sweep reaches the swallow is collected; a star that meets anything else is
// dropped.
func (g *Game) updateStars() {
	g.starMoveTick++
	if g.starMoveTick < starMoveTicks {
		return
	}
	g.starMoveTick = 0
	g.starFrame++
	shade := starShade(g.starFrame)

	sb := g.swallow.Bounds()
	for i := 0; i < g.stars.Len(); {
		st := g.stars.At(i)
		st.Color = shade
		if sweeps(st, sb) {
			g.collectStar(i)
			continue
		}

		g.erase(st)
		if blocker := g.attemptMove(&st.Entity); blocker != TagEmpty {
			if blocker == TagSwallow {
				g.collected++
			}
			g.stars.Remove(i)
			continue
		}
		g.place(st)
		i++
	}
}

// sweeps reports whether the star's fall this step passes through target,
// so fast stars cannot skip over the swallow.
func sweeps(st *Star, target core.Rect) bool {
	top := st.Y
	bottom := st.Y + st.H + st.Speed
	if bottom < target.Y || top > target.Bottom() {
		return false
	}
	return st.X < target.Right() && st.X+st.W > target.X
}

// spawnStar drops a new star along the top row.
func (g *Game) spawnStar() {
	speed := g.rng.Intn(3) + 1
	x := 2 + g.rng.Intn(max(g.grid.Cols()-3, 1))

	st := &Star{Entity: Entity{X: x, Y: 1, W: 1, H: 1, Color: core.ColorYellow1}}
	st.Head(DirDown, speed)
	if g.grid.Query(st.Bounds()) != TagEmpty {
		g.logger.Debug("star spawn skipped", "x", x)
		return
	}
	g.stars.Add(st)
	g.place(st)
}
