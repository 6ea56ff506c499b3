package swallow

import (
	"testing"

	"github.com/vovakirdan/swallow/internal/core"
)

func TestHunterWallBounce(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	h := addHunter(g, 28, 5, DirRight, 3)

	if g.updateHunter(h) {
		t.Fatal("hunter removed on first bounce")
	}
	if h.Bounces != 2 {
		t.Errorf("Bounces = %d, want 2", h.Bounces)
	}
	if h.DX != -1 || h.DY != 0 || h.Facing != DirLeft {
		t.Errorf("velocity (%d,%d) facing %v, want (-1,0) left", h.DX, h.DY, h.Facing)
	}
	if h.X != 28 {
		t.Errorf("X = %d, blocked hunter should not move", h.X)
	}
	if g.grid.At(28, 5) != TagHunter {
		t.Error("hunter not rewritten to grid after bounce")
	}

	g.updateHunter(h)
	if h.X != 27 || h.Bounces != 2 {
		t.Errorf("after free move X=%d bounces=%d, want X=27 bounces=2", h.X, h.Bounces)
	}
}

func TestHunterCornerBounce(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	h := addHunter(g, 5, 5, DirRight, 3)
	h.DY = 1
	g.grid.Write(core.NewRect(6, 6, 1, 1), TagStar)

	g.updateHunter(h)
	if h.DX != -1 || h.DY != -1 {
		t.Errorf("velocity = (%d,%d), want both axes reversed", h.DX, h.DY)
	}
	if h.Facing != DirLeft {
		t.Errorf("Facing = %v, want left on a tie", h.Facing)
	}
	if h.Bounces != 2 {
		t.Errorf("Bounces = %d, want 2", h.Bounces)
	}
}

func TestHunterRemovedWhenBouncesRunOut(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	h := addHunter(g, 28, 5, DirRight, 2)

	// Bounce off the right wall, cross to x=1, bounce off the left wall.
	for tick := 1; tick <= 28; tick++ {
		g.updateHunters()
		if g.hunters.Len() != 1 {
			t.Fatalf("hunter removed early at tick %d", tick)
		}
	}
	if h.X != 1 || h.Bounces != 1 {
		t.Fatalf("at tick 28 X=%d bounces=%d, want X=1 bounces=1", h.X, h.Bounces)
	}

	g.updateHunters()
	if g.hunters.Len() != 0 {
		t.Fatal("hunter not removed on the tick its bounces ran out")
	}
	if got := g.grid.Count(TagHunter); got != 0 {
		t.Errorf("hunter cells left in grid: %d", got)
	}
}

func TestHunterStrikesSwallow(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	h := addHunter(g, 14, 11, DirRight, 5)

	if !g.updateHunter(h) {
		t.Fatal("hunter should be destroyed by hitting the swallow")
	}
	if g.swallow.HP != swallowHP-25 {
		t.Errorf("HP = %d, want %d", g.swallow.HP, swallowHP-25)
	}
	if g.swallow.Color != core.ColorCyan3 {
		t.Errorf("Color = %v, want cyan_3 at 75 hp", g.swallow.Color)
	}
	if h.Bounces != 4 {
		t.Errorf("Bounces = %d, want exactly one decrement", h.Bounces)
	}
	if g.grid.At(14, 11) != TagEmpty {
		t.Error("destroyed hunter still in grid")
	}
	if g.grid.Count(TagSwallow) != 9 {
		t.Error("swallow cells damaged by hunter removal")
	}
}

func TestHunterHitsHunter(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	addHunter(g, 5, 5, DirRight, 5)
	other := addHunter(g, 6, 5, DirLeft, 5)
	other.Cooldown = 0 // pauses in place instead of moving

	g.updateHunters()
	if g.hunters.Len() != 1 {
		t.Fatalf("hunters = %d, want 1", g.hunters.Len())
	}
	if g.hunters.At(0) != other {
		t.Error("moving hunter survived a hunter collision")
	}
	if g.grid.At(6, 5) != TagHunter {
		t.Error("surviving hunter lost its cell")
	}
	if g.swallow.HP != swallowHP {
		t.Errorf("HP = %d, hunter collision must not damage swallow", g.swallow.HP)
	}
}

func TestSwallowRamsHunter(t *testing.T) {
	g := startGame(t, quietLevel())
	addHunter(g, 18, 11, DirUp, 5)

	g.updateSwallow()
	if g.hunters.Len() != 0 {
		t.Error("rammed hunter not destroyed")
	}
	if g.swallow.HP != swallowHP-25 {
		t.Errorf("HP = %d, want %d", g.swallow.HP, swallowHP-25)
	}
	if g.swallow.X != 15 {
		t.Errorf("swallow moved to x=%d despite block", g.swallow.X)
	}
	if g.grid.Count(TagSwallow) != 9 || g.grid.Count(TagHunter) != 0 {
		t.Error("grid out of sync after ram")
	}
}

func TestSwallowTakesStar(t *testing.T) {
	g := startGame(t, quietLevel())
	addStar(g, 18, 10, 1)

	g.updateSwallow()
	if g.collected != 1 || g.stars.Len() != 0 {
		t.Errorf("collected=%d stars=%d, want 1 and 0", g.collected, g.stars.Len())
	}
	if g.swallow.HP != swallowHP {
		t.Errorf("HP changed to %d", g.swallow.HP)
	}
}

func TestSwallowHealthColors(t *testing.T) {
	tests := []struct {
		hp   int
		want core.Color
	}{
		{100, core.ColorGreen5},
		{80, core.ColorGreen5},
		{79, core.ColorCyan3},
		{40, core.ColorPurple5},
		{20, core.ColorRed3},
		{19, core.ColorRed5},
		{0, core.ColorRed5},
	}
	for _, tt := range tests {
		s := &Swallow{HP: tt.hp}
		s.recolor()
		if s.Color != tt.want {
			t.Errorf("hp %d: color %v, want %v", tt.hp, s.Color, tt.want)
		}
	}

	s := &Swallow{HP: 10}
	s.hurt(50)
	if s.HP != 0 {
		t.Errorf("HP = %d, want clamp to 0", s.HP)
	}
}
