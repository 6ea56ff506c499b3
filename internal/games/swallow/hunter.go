package swallow

import "github.com/vovakirdan/swallow/internal/core"

// updateHunters runs AI and movement for every hunter.
func (g *Game) updateHunters() {
	for i := 0; i < g.hunters.Len(); {
		if g.updateHunter(g.hunters.At(i)) {
			g.hunters.Remove(i)
			continue
		}
		i++
	}
}

// updateHunter advances one hunter by a tick. It reports whether the hunter
// must be dropped; a dropped hunter has already left the grid.
func (g *Game) updateHunter(h *Hunter) bool {
	if g.think(h) {
		return false
	}

	g.erase(h)
	if blocker := g.attemptMove(&h.Entity); blocker != TagEmpty {
		if g.resolveHunterCollision(h, blocker) {
			return true
		}
	}
	if h.Bounces <= 0 {
		g.logger.Debug("hunter worn out", "x", h.X, "y", h.Y)
		return true
	}
	g.place(h)
	return false
}

// think steps the Idle, Paused, Dashing state machine. It reports whether
// the hunter holds still this tick.
func (g *Game) think(h *Hunter) bool {
	switch h.State {
	case StateIdle:
		if h.Cooldown == 0 && !g.onIntercept(h) {
			h.State = StatePaused
			h.Timer = g.level.HunterAI.PauseTicks
			return true
		}
	case StatePaused:
		h.Timer--
		if h.Timer <= 0 {
			g.dash(h)
		}
		return true
	}
	return false
}

// onIntercept reports whether the hunter's current heading brings it closer
// to the swallow within the look-ahead window.
func (g *Game) onIntercept(h *Hunter) bool {
	hx, hy := h.Bounds().Center()
	sx, sy := g.swallow.Bounds().Center()
	n := g.level.HunterAI.InterceptTicks
	now := core.Manhattan(hx, hy, sx, sy)
	later := core.Manhattan(hx+h.DX*n, hy+h.DY*n, sx, sy)
	return later < now
}

// dash launches the hunter at the swallow's current position.
func (g *Game) dash(h *Hunter) {
	speed := h.BaseSpeed * 2
	if limit := g.level.HunterAI.DashSpeedCap; limit > 0 {
		speed = min(speed, limit)
	}

	hx, hy := h.Bounds().Center()
	sx, sy := g.swallow.Bounds().Center()
	dx, dy := sx-hx, sy-hy

	h.State = StateDashing
	h.Speed = speed
	h.Cooldown = g.level.HunterAI.DashCooldownTicks
	if dx == 0 && dy == 0 {
		h.Head(h.Facing, speed)
		return
	}
	h.DX = core.Sign(dx) * speed
	h.DY = core.Sign(dy) * speed
	h.Facing = facingFor(dx, dy)
}

// coolHunters counts down every hunter's dash cooldown.
func (g *Game) coolHunters() {
	for i := 0; i < g.hunters.Len(); i++ {
		h := g.hunters.At(i)
		if h.Cooldown > 0 {
			h.Cooldown--
		}
	}
}
