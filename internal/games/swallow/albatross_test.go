package swallow

import (
	"testing"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
)

func TestAlbatrossRelocates(t *testing.T) {
	lvl := quietLevel()
	lvl.Board = config.BoardConfig{Width: 60, Height: 30}
	lvl.Albatross.Cooldown = 12
	g := startGame(t, lvl)
	before := g.swallow.Bounds()

	in := core.NewInputFrame()
	in.Set(core.ActionSpecial)
	g.Step(in)

	s := g.swallow
	if s.Bounds() == before.Translate(1, 0) {
		t.Fatal("albatross did not move the swallow")
	}
	if g.grid.Count(TagSwallow) != 9 {
		t.Errorf("swallow cells = %d after relocation, want 9", g.grid.Count(TagSwallow))
	}
	zone := core.NewRect(s.X-s.DX, s.Y, s.W, s.H).Expand(safeZonePad)
	if zone.X < 2 || zone.Y < 2 || zone.Right() >= 58 || zone.Bottom() >= 28 {
		t.Errorf("drop-off zone %+v leaves the safe interior", zone)
	}
	if g.albatrossCooldown <= 0 || g.albatrossCooldown > 12 {
		t.Errorf("cooldown = %v, want just under 12", g.albatrossCooldown)
	}

	// On cooldown the call does nothing.
	x, y := s.X, s.Y
	if g.callAlbatross() {
		t.Error("albatross answered during cooldown")
	}
	if s.X != x || s.Y != y {
		t.Error("swallow moved during cooldown")
	}
}

func TestAlbatrossNoSafeZone(t *testing.T) {
	lvl := quietLevel()
	lvl.Board = config.BoardConfig{Width: config.MinBoardWidth, Height: config.MinBoardHeight}
	g := startGame(t, lvl)
	x, y := g.swallow.X, g.swallow.Y

	if g.callAlbatross() {
		t.Error("albatross found a zone on a board too small to hold one")
	}
	if g.swallow.X != x || g.swallow.Y != y || g.albatrossCooldown != 0 {
		t.Error("failed call changed state")
	}
}

func TestSafeZoneRejectsOccupied(t *testing.T) {
	lvl := quietLevel()
	lvl.Board = config.BoardConfig{Width: 60, Height: 30}
	g := startGame(t, lvl)

	r := core.NewRect(8, 8, 3, 3)
	if !g.safeZone(r) {
		t.Fatal("empty zone rejected")
	}
	addStar(g, 6, 6, 1)
	if g.safeZone(r) {
		t.Error("zone with a star in its padding accepted")
	}
}
