package swallow

import (
	"testing"

	"github.com/vovakirdan/swallow/internal/core"
)

func TestStarShadeCycle(t *testing.T) {
	tests := []struct {
		frame int
		want  core.Color
	}{
		{0, core.ColorYellow1},
		{1, core.ColorYellow1},
		{2, core.ColorYellow2},
		{6, core.ColorYellow4},
		{8, core.ColorYellow5},
		{10, core.ColorYellow4},
		{14, core.ColorYellow2},
		{16, core.ColorYellow1},
	}
	for _, tt := range tests {
		if got := starShade(tt.frame); got != tt.want {
			t.Errorf("starShade(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestStarFallsOnCadence(t *testing.T) {
	g := startGame(t, quietLevel())
	st := addStar(g, 3, 2, 1)

	for i := 1; i < starMoveTicks; i++ {
		g.updateStars()
		if st.Y != 2 {
			t.Fatalf("star moved on tick %d", i)
		}
	}
	g.updateStars()
	if st.Y != 3 {
		t.Errorf("Y = %d after %d ticks, want 3", st.Y, starMoveTicks)
	}
	if g.grid.At(3, 3) != TagStar || g.grid.At(3, 2) != TagEmpty {
		t.Error("grid did not follow the star")
	}
}

func TestStarCountedOnce(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)

	// Inside the swallow and on a falling path into it at the same time.
	st := &Star{Entity: Entity{X: 16, Y: 11, W: 1, H: 1}}
	st.Head(DirDown, 1)
	g.stars.Add(st)
	g.starMoveTick = starMoveTicks - 1

	g.Step(core.NewInputFrame())
	if g.collected != 1 {
		t.Errorf("collected = %d, want exactly 1", g.collected)
	}
	if g.stars.Len() != 0 {
		t.Errorf("stars = %d, want 0", g.stars.Len())
	}
}

func TestFastStarCannotSkipSwallow(t *testing.T) {
	g := startGame(t, quietLevel())
	freeze(g)
	st := addStar(g, 16, 5, 3)

	g.starMoveTick = starMoveTicks - 1
	g.updateStars()
	if st.Y != 8 || g.collected != 0 {
		t.Fatalf("after first fall Y=%d collected=%d, want Y=8 collected=0", st.Y, g.collected)
	}

	g.starMoveTick = starMoveTicks - 1
	g.updateStars()
	if g.collected != 1 || g.stars.Len() != 0 {
		t.Errorf("collected=%d stars=%d, want sweep to collect", g.collected, g.stars.Len())
	}
}

func TestStarDroppedAtBottom(t *testing.T) {
	g := startGame(t, quietLevel())
	addStar(g, 5, 17, 2)

	g.starMoveTick = starMoveTicks - 1
	g.updateStars()
	if g.stars.Len() != 0 {
		t.Error("star reaching the floor should be removed")
	}
	if g.collected != 0 {
		t.Errorf("collected = %d, floor must not count", g.collected)
	}
	if g.grid.Count(TagStar) != 0 {
		t.Error("dropped star left in grid")
	}
}

func TestStarsFlickerTogether(t *testing.T) {
	g := startGame(t, quietLevel())
	a := addStar(g, 3, 2, 1)
	b := addStar(g, 7, 2, 1)

	for i := 0; i < starMoveTicks*3; i++ {
		g.updateStars()
	}
	if a.Color != b.Color {
		t.Errorf("colors differ: %v vs %v", a.Color, b.Color)
	}
	if a.Color != starShade(3) {
		t.Errorf("Color = %v, want %v", a.Color, starShade(3))
	}
}
