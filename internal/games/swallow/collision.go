package swallow

import "github.com/vovakirdan/swallow/internal/core"

// bump applies the effect of the swallow running into blocker at region r.
func (g *Game) bump(blocker Tag, r core.Rect) {
	switch blocker {
	case TagStar:
		if i := g.stars.Find(func(s *Star) bool { return s.Bounds().Intersects(r) }); i >= 0 {
			g.collectStar(i)
		}
	case TagHunter:
		i := g.hunters.Find(func(h *Hunter) bool { return h.Bounds().Intersects(r) })
		if i < 0 {
			return
		}
		h := g.hunters.At(i)
		g.swallow.hurt(h.Damage)
		g.logger.Debug("swallow rammed hunter", "damage", h.Damage, "hp", g.swallow.HP)
		g.removeHunter(i)
	}
}

// resolveHunterCollision bounces h off blocker. It reports whether the
// hunter was destroyed by the impact. The hunter's cells must be erased.
func (g *Game) resolveHunterCollision(h *Hunter, blocker Tag) bool {
	// Probe each axis alone to find which one is blocked.
	r := h.Bounds()
	hitX := h.DX != 0 && g.grid.Query(r.Translate(h.DX, 0)) != TagEmpty
	hitY := h.DY != 0 && g.grid.Query(r.Translate(0, h.DY)) != TagEmpty
	if !hitX && !hitY {
		hitX, hitY = true, true
	}
	if hitX {
		h.DX = -h.DX
	}
	if hitY {
		h.DY = -h.DY
	}

	h.State = StateIdle
	h.Speed = h.BaseSpeed
	h.DX = core.Sign(h.DX) * h.Speed
	h.DY = core.Sign(h.DY) * h.Speed
	h.faceVelocity()
	h.Bounces--

	switch blocker {
	case TagSwallow:
		g.swallow.hurt(h.Damage)
		g.logger.Debug("hunter struck swallow", "damage", h.Damage, "hp", g.swallow.HP)
		return true
	case TagHunter:
		return true
	}
	return false
}

// collectStar removes the star at index i and counts it.
func (g *Game) collectStar(i int) {
	g.erase(g.stars.At(i))
	g.stars.Remove(i)
	g.collected++
}

// removeHunter erases and drops the hunter at index i.
func (g *Game) removeHunter(i int) {
	g.erase(g.hunters.At(i))
	g.hunters.Remove(i)
}

// collectTouching collects every star overlapping the swallow.
func (g *Game) collectTouching() {
	sb := g.swallow.Bounds()
	for i := 0; i < g.stars.Len(); {
		if g.stars.At(i).Bounds().Intersects(sb) {
			g.collectStar(i)
			continue
		}
		i++
	}
}
