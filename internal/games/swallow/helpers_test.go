package swallow

import (
	"testing"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
)

// quietLevel is a 30x20 board with spawning effectively disabled.
// The swallow starts at (15,10) and covers x 15-17, y 10-12.
func quietLevel() config.Level {
	lvl := config.DefaultLevel()
	lvl.Board = config.BoardConfig{Width: 30, Height: 20}
	lvl.Seed = 42
	lvl.Timer = 120
	lvl.Spawn.Star = 10000
	lvl.Spawn.Hunter = 10000
	lvl.HunterAI = config.HunterAIConfig{
		PauseTicks:        3,
		DashCooldownTicks: 20,
		InterceptTicks:    5,
		DashSpeedCap:      2,
	}
	return lvl
}

func startGame(t *testing.T, lvl config.Level) *Game {
	t.Helper()
	g := New(lvl)
	if err := g.Start(core.RuntimeConfig{ScreenW: 80, ScreenH: 30}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return g
}

// freeze stops the swallow so it holds its cells across ticks.
func freeze(g *Game) {
	g.swallow.DX, g.swallow.DY = 0, 0
}

// addHunter places a 1x1 hunter that will not pause on its own.
func addHunter(g *Game, x, y int, dir Direction, bounces int) *Hunter {
	h := &Hunter{
		Entity:    Entity{X: x, Y: y, W: 1, H: 1, Color: core.ColorRed3},
		Bounces:   bounces,
		Damage:    25,
		BaseSpeed: 1,
		Cooldown:  1000,
	}
	h.Head(dir, 1)
	g.hunters.Add(h)
	g.place(h)
	return h
}

func addStar(g *Game, x, y, speed int) *Star {
	st := &Star{Entity: Entity{X: x, Y: y, W: 1, H: 1, Color: core.ColorYellow1}}
	st.Head(DirDown, speed)
	g.stars.Add(st)
	g.place(st)
	return st
}
