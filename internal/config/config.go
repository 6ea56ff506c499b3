// Package config provides YAML-based level loading, validation and
// difficulty presets for the swallow game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/swallow/internal/core"
)

// Level contains every tunable of one round.
type Level struct {
	Name      string          `yaml:"name"`
	Number    int             `yaml:"level"` // Score multiplier
	Board     BoardConfig     `yaml:"board"`
	StarQuota int             `yaml:"star_quota"`
	Timer     float64         `yaml:"timer"` // Round duration in seconds
	Seed      int64           `yaml:"seed"`
	Speed     SpeedConfig     `yaml:"speed"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Score     ScoreWeights    `yaml:"score"`
	Albatross AlbatrossConfig `yaml:"albatross"`
	HunterAI  HunterAIConfig  `yaml:"hunter_ai"`
	Hunters   []HunterConfig  `yaml:"hunters"`
}

// BoardConfig is the size of the play area, border included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig bounds the player-adjustable game speed.
// The tick period is 66666µs divided by the current speed.
type SpeedConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SpawnConfig defines spawn rates and their escalation over the round.
type SpawnConfig struct {
	Star                float64 `yaml:"star"`   // Star every star*10 ticks
	Hunter              float64 `yaml:"hunter"` // Base hunter period is hunter*10 ticks
	HunterEscalation    float64 `yaml:"hunter_escalation"`
	BounceEscalation    float64 `yaml:"bounce_escalation"`    // Seconds per bonus bounce
	EscalationFrequency float64 `yaml:"escalation_frequency"` // Seconds per escalation step
}

// ScoreWeights weigh the terms of a winning score.
type ScoreWeights struct {
	Stars float64 `yaml:"stars"`
	Life  float64 `yaml:"life"`
	Time  float64 `yaml:"time"`
}

// AlbatrossConfig controls the relocation maneuver.
type AlbatrossConfig struct {
	Cooldown float64 `yaml:"cooldown"` // Seconds between calls
	Attempts int     `yaml:"attempts"` // Random safe-zone probes per call
}

// HunterAIConfig holds the hunter state machine constants, in ticks.
type HunterAIConfig struct {
	PauseTicks        int `yaml:"pause_ticks"`
	DashCooldownTicks int `yaml:"dash_cooldown_ticks"`
	InterceptTicks    int `yaml:"intercept_ticks"`
	DashSpeedCap      int `yaml:"dash_speed_cap"`
}

// HunterConfig is one hunter template.
type HunterConfig struct {
	Name    string    `yaml:"name"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Bounces int       `yaml:"bounces"`
	Speed   int       `yaml:"speed"`
	Damage  int       `yaml:"damage"`
	Color   string    `yaml:"color"`
	Sprites SpriteSet `yaml:"sprites"`
}

// SpriteSet holds row-major sprites per facing direction.
type SpriteSet struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ColorValue resolves the template's palette color.
func (h HunterConfig) ColorValue() core.Color {
	c, _ := core.ColorByName(h.Color)
	return c
}

// Minimum board size. The albatross probes cols-10 and rows-10 cells.
const (
	MinBoardWidth  = 16
	MinBoardHeight = 12
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Validate checks the values the engine cannot run without.
// Tuning values outside sensible ranges are left to the level author.
func (l Level) Validate() error {
	var errs []error
	if l.Board.Width < MinBoardWidth || l.Board.Height < MinBoardHeight {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than %dx%d",
			l.Board.Width, l.Board.Height, MinBoardWidth, MinBoardHeight))
	}
	if l.Speed.Min < 1 || l.Speed.Max < l.Speed.Min {
		errs = append(errs, fmt.Errorf("speed range [%d, %d] is invalid", l.Speed.Min, l.Speed.Max))
	}
	if l.Timer <= 0 {
		errs = append(errs, fmt.Errorf("timer must be positive, got %v", l.Timer))
	}
	for i, h := range l.Hunters {
		if h.Width <= 0 || h.Height <= 0 {
			errs = append(errs, fmt.Errorf("hunter %d has empty footprint %dx%d", i, h.Width, h.Height))
		}
		if _, ok := core.ColorByName(h.Color); h.Color != "" && !ok {
			errs = append(errs, fmt.Errorf("hunter %d has unknown color %q", i, h.Color))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.Name, errors.Join(errs...))
	}
	return nil
}

// normalize fits every hunter sprite to exactly width*height runes.
func (l *Level) normalize() {
	for i := range l.Hunters {
		h := &l.Hunters[i]
		size := h.Width * h.Height
		h.Sprites.Up = fitSprite(h.Sprites.Up, size)
		h.Sprites.Down = fitSprite(h.Sprites.Down, size)
		h.Sprites.Left = fitSprite(h.Sprites.Left, size)
		h.Sprites.Right = fitSprite(h.Sprites.Right, size)
	}
	if l.Albatross.Attempts <= 0 {
		l.Albatross.Attempts = DefaultLevel().Albatross.Attempts
	}
}

func fitSprite(s string, size int) string {
	if size <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) >= size {
		return string(runes[:size])
	}
	out := make([]rune, size)
	copy(out, runes)
	for i := len(runes); i < size; i++ {
		out[i] = '#'
	}
	return string(out)
}
