package replay

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/games/swallow"
)

// ErrIncomplete is returned when the commands run out before the round ends.
var ErrIncomplete = errors.New("replay: recording ends before the round is decided")

// Verdict is the outcome of re-running a recording.
type Verdict struct {
	Ticks int
	Score int
	Won   bool
	Match bool // Score and outcome equal the recorded ones
	Final swallow.Snapshot
}

// Play re-runs rec on a fresh engine. It stops between ticks if ctx is
// cancelled.
func Play(ctx context.Context, rec *Recording, logger *log.Logger) (Verdict, error) {
	if err := rec.Level.Validate(); err != nil {
		return Verdict{}, err
	}

	g := swallow.New(rec.Level)
	g.SetLogger(logger)
	g.SetUsername(rec.Username)
	if err := g.Start(core.RuntimeConfig{Seed: rec.Seed}); err != nil {
		return Verdict{}, err
	}

	var v Verdict
	for _, cmd := range rec.Commands {
		if err := ctx.Err(); err != nil {
			return v, err
		}
		in := core.NewInputFrame()
		in.Set(core.Action(cmd))
		g.Step(in)
		v.Ticks++
		if !g.Running() {
			break
		}
	}

	v.Final = g.Snapshot()
	state := g.State()
	v.Score = state.Score
	v.Won = state.Won
	if g.Running() {
		return v, ErrIncomplete
	}
	v.Match = v.Score == rec.Score && v.Won == rec.Won
	if logger != nil {
		logger.Debug("replay finished", "id", rec.ID, "ticks", v.Ticks, "score", v.Score, "match", v.Match)
	}
	return v, nil
}
