package swallow

import (
	"testing"

	"github.com/vovakirdan/swallow/internal/core"
)

func TestAttemptMoveNoDrift(t *testing.T) {
	g := startGame(t, quietLevel())
	e := &Entity{X: 2, Y: 2, W: 1, H: 1, DX: 1, DY: 1}

	for i := 1; i <= 6; i++ {
		if tag := g.attemptMove(e); tag != TagEmpty {
			t.Fatalf("move %d blocked by %v", i, tag)
		}
		if e.X != 2+i || e.Y != 2+i {
			t.Fatalf("after %d moves at (%d,%d), want (%d,%d)", i, e.X, e.Y, 2+i, 2+i)
		}
	}
}

func TestAttemptMoveBlockedKeepsPosition(t *testing.T) {
	g := startGame(t, quietLevel())
	e := &Entity{X: 27, Y: 4, W: 1, H: 1, DX: 2}

	if tag := g.attemptMove(e); tag != TagWall {
		t.Errorf("attemptMove() = %v, want wall", tag)
	}
	if e.X != 27 || e.Y != 4 {
		t.Errorf("blocked entity moved to (%d,%d)", e.X, e.Y)
	}
}

func TestEntityHead(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -2},
		{DirDown, 0, 2},
		{DirLeft, -2, 0},
		{DirRight, 2, 0},
	}
	for _, tt := range tests {
		var e Entity
		e.Head(tt.dir, 2)
		if e.DX != tt.dx || e.DY != tt.dy || e.Facing != tt.dir || e.Speed != 2 {
			t.Errorf("Head(%v) = (%d,%d) facing %v, want (%d,%d)", tt.dir, e.DX, e.DY, e.Facing, tt.dx, tt.dy)
		}
	}
}

func TestFacingFor(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   Direction
	}{
		{3, 1, DirRight},
		{-3, 1, DirLeft},
		{1, -3, DirUp},
		{1, 3, DirDown},
		{2, 2, DirRight},
		{-2, -2, DirLeft},
	}
	for _, tt := range tests {
		if got := facingFor(tt.dx, tt.dy); got != tt.want {
			t.Errorf("facingFor(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestStepEmitsEraseBeforeDraw(t *testing.T) {
	g := startGame(t, quietLevel())
	before := g.swallow.Bounds()

	g.Step(core.NewInputFrame())

	reqs := g.Requests()
	if len(reqs) < 2 {
		t.Fatalf("got %d requests, want at least 2", len(reqs))
	}
	if reqs[0].Op != OpErase || reqs[0].Rect != before {
		t.Errorf("first request = %+v, want erase of %+v", reqs[0], before)
	}
	after := g.swallow.Bounds()
	if reqs[1].Op != OpDraw || reqs[1].Rect != after {
		t.Errorf("second request = %+v, want draw at %+v", reqs[1], after)
	}
	if after != before.Translate(1, 0) {
		t.Errorf("swallow at %+v, want one cell right of %+v", after, before)
	}
}

func TestGridTracksSwallow(t *testing.T) {
	g := startGame(t, quietLevel())
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.grid.Count(TagSwallow); got != swallowSize*swallowSize {
		t.Errorf("swallow cells = %d, want %d", got, swallowSize*swallowSize)
	}
	s := g.swallow
	if got := g.grid.At(s.X, s.Y); got != TagSwallow {
		t.Errorf("grid at swallow origin = %v", got)
	}
}
