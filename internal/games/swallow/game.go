// Package swallow implements the swallow arcade simulation: a bird that
// collects falling stars on a walled board while hunters bounce around and
// dash at it, under a round timer and escalating spawn rates.
package swallow

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "swallow"

// baseTickMicros is the tick period at game speed 1.
const baseTickMicros = 66666

// Game is one swallow round and everything it owns.
type Game struct {
	level    config.Level
	catalog  Catalog
	username string
	logger   *log.Logger

	rng  *rand.Rand
	seed int64
	err  error

	grid     *Grid
	canvas   *core.Screen
	swallow  *Swallow
	hunters  Pool[Hunter]
	stars    Pool[Star]
	requests []DrawRequest

	tick              uint64
	speed             int
	timeLeft          float64
	albatrossCooldown float64
	collected         int
	hunterSpawnTick   int
	starSpawnTick     int
	starMoveTick      int
	starFrame         int

	running bool
	result  Result
	score   int

	screenW, screenH int
}

// New creates a game for an already validated level.
func New(level config.Level) *Game {
	return &Game{
		level:   level,
		catalog: NewCatalog(level.Hunters),
		logger:  log.New(io.Discard),
	}
}

func init() {
	registry.Register(ID, "Swallow", func(opts registry.Options) (registry.Game, error) {
		lvl, err := config.LoadLevel(opts.Level, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&lvl, preset)

		g := New(lvl)
		g.SetUsername(opts.Username)
		return g, nil
	})
}

// SetLogger routes engine events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetUsername sets the name reported with the round outcome.
func (g *Game) SetUsername(name string) {
	g.username = name
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Swallow" }

// Level returns the level being played.
func (g *Game) Level() config.Level { return g.level }

// Seed returns the seed of the current round.
func (g *Game) Seed() int64 { return g.seed }

// Err returns the error that prevented the round from starting, if any.
func (g *Game) Err() error { return g.err }

// Reset starts a new round. A failure is kept in Err and leaves the game
// stopped.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.err = g.Start(cfg)
}

// Start builds the board and places the swallow. A non-zero cfg.Seed
// replaces the level seed.
func (g *Game) Start(cfg core.RuntimeConfig) error {
	g.running = false
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH

	cols, rows := g.level.Board.Width, g.level.Board.Height
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return err
	}

	g.seed = g.level.Seed
	if cfg.Seed != 0 {
		g.seed = cfg.Seed
	}
	g.rng = rand.New(rand.NewSource(g.seed))

	g.grid = grid
	g.canvas = newCanvas(cols, rows)
	g.hunters.Reset()
	g.stars.Reset()
	g.requests = g.requests[:0]

	g.tick = 0
	g.speed = g.level.Speed.Min
	g.timeLeft = g.level.Timer
	g.albatrossCooldown = 0
	g.collected = 0
	g.hunterSpawnTick = 0
	g.starSpawnTick = 0
	g.starMoveTick = 0
	g.starFrame = 0
	g.result = ResultPending
	g.score = 0

	g.swallow = newSwallow(cols, rows)
	g.place(g.swallow)
	g.paint()

	g.running = true
	g.logger.Info("round started",
		"level", g.level.Name,
		"cols", cols,
		"rows", rows,
		"seed", g.seed,
		"quota", g.level.StarQuota,
	)
	return nil
}

// Step runs one simulation tick. Once the round is over it is a no-op.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.requests = g.requests[:0]

	g.applyInput(in.Action)
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	g.updateSwallow()
	g.updateHunters()
	g.collectTouching()
	g.updateStars()
	g.runHunterSpawner()
	g.runStarSpawner()
	g.decay()
	g.evaluate()
	g.paint()

	return core.StepResult{State: g.State()}
}

// applyInput handles the single command of a tick.
func (g *Game) applyInput(a core.Action) {
	s := g.swallow
	switch a {
	case core.ActionUp:
		s.Head(DirUp, s.Speed)
	case core.ActionDown:
		s.Head(DirDown, s.Speed)
	case core.ActionLeft:
		s.Head(DirLeft, s.Speed)
	case core.ActionRight:
		s.Head(DirRight, s.Speed)
	case core.ActionSpeedUp:
		g.speed = min(g.speed+1, g.level.Speed.Max)
	case core.ActionSpeedDown:
		g.speed = max(g.speed-1, g.level.Speed.Min)
	case core.ActionSpecial:
		g.callAlbatross()
	case core.ActionQuit:
		g.running = false
		g.result = ResultQuit
		g.score = 0
		g.logger.Info("round abandoned", "level", g.level.Name, "tick", g.tick)
	}
}

// updateSwallow moves the swallow and applies whatever it ran into.
func (g *Game) updateSwallow() {
	s := g.swallow
	s.animate()
	g.erase(s)
	target := s.Next()
	if blocker := g.attemptMove(&s.Entity); blocker != TagEmpty {
		g.bump(blocker, target)
	}
	g.place(s)
}

// decay counts down cooldowns and the round clock by one tick.
func (g *Game) decay() {
	g.coolHunters()
	dt := g.delta()
	g.albatrossCooldown = max(g.albatrossCooldown-dt, 0)
	g.timeLeft -= dt
}

// delta returns the length of the current tick in seconds.
func (g *Game) delta() float64 {
	return float64(baseTickMicros/g.speed) / 1e6
}

// TickInterval returns the wall-clock period of a tick at the current speed.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(baseTickMicros/max(g.speed, 1)) * time.Microsecond
}

// Elapsed returns the seconds of round time used so far.
func (g *Game) Elapsed() float64 {
	return g.level.Timer - g.timeLeft
}

// Running reports whether the round is still in progress.
func (g *Game) Running() bool { return g.running }

// Result returns how the round ended, or ResultPending.
func (g *Game) Result() Result { return g.result }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.err != nil || (g.swallow != nil && !g.running),
		Won:      g.result == ResultWon,
	}
}

// Outcome returns the record to persist for a finished round.
func (g *Game) Outcome() core.Outcome {
	return core.Outcome{
		Level:    g.level.Name,
		Username: g.username,
		Score:    g.score,
		Won:      g.result == ResultWon,
		Aborted:  g.result == ResultQuit,
	}
}

// Requests returns the draw requests emitted by the last tick.
func (g *Game) Requests() []DrawRequest {
	out := make([]DrawRequest, len(g.requests))
	copy(out, g.requests)
	return out
}
