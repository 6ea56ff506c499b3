package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Fallback ticks per second for games without their own pacing
	Seed     int64 // RNG seed; 0 lets the game use its configured seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 15,
		Seed:     0,
	}
}

// Interval returns the tick period implied by TickRate.
func (c RuntimeConfig) Interval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 15
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Won      bool // Whether the round ended in a win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Outcome is the record a finished round hands to persistence.
type Outcome struct {
	Level    string
	Username string
	Score    int
	Won      bool
	Aborted  bool // Player quit before the round was decided
}
