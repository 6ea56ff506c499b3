package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// escalationScale returns how strongly a preset scales escalation.
func escalationScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyFixed:
		return 0
	default:
		return 1
	}
}

// ApplyPreset scales a level's escalation for a difficulty preset.
// Spawn escalation is multiplied by the scale; the bounce coefficient is
// seconds per bonus bounce, so it is divided. Fixed disables both.
func ApplyPreset(lvl *Level, preset DifficultyPreset) {
	scale := escalationScale(preset)
	lvl.Spawn.HunterEscalation *= scale
	if scale == 0 {
		lvl.Spawn.BounceEscalation = 0
		return
	}
	lvl.Spawn.BounceEscalation /= scale

	switch preset {
	case DifficultyEasy:
		lvl.Albatross.Cooldown *= 0.5
	case DifficultyHard:
		lvl.Albatross.Cooldown *= 1.5
	}
}
