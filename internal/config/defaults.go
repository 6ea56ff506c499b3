package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed levels/*.yaml
var embeddedLevels embed.FS

// DefaultLevelName is played when no level is chosen.
const DefaultLevelName = "meadow"

// DefaultLevel returns the built-in level used when nothing else loads.
func DefaultLevel() Level {
	return Level{
		Name:   DefaultLevelName,
		Number: 1,
		Board: BoardConfig{
			Width:  64,
			Height: 22,
		},
		StarQuota: 10,
		Timer:     90,
		Seed:      7,
		Speed: SpeedConfig{
			Min: 1,
			Max: 5,
		},
		Spawn: SpawnConfig{
			Star:                1.5,
			Hunter:              4.0,
			HunterEscalation:    0.04,
			BounceEscalation:    30,
			EscalationFrequency: 5,
		},
		Score: ScoreWeights{
			Stars: 100,
			Life:  10,
			Time:  5,
		},
		Albatross: AlbatrossConfig{
			Cooldown: 12,
			Attempts: 100,
		},
		HunterAI: HunterAIConfig{
			PauseTicks:        12,
			DashCooldownTicks: 75,
			InterceptTicks:    5,
			DashSpeedCap:      2,
		},
		Hunters: []HunterConfig{
			{
				Name:    "kestrel",
				Width:   2,
				Height:  2,
				Bounces: 3,
				Speed:   1,
				Damage:  10,
				Color:   "red_3",
				Sprites: SpriteSet{Up: `^^/\`, Down: `\/vv`, Left: "<=<=", Right: "=>=>"},
			},
		},
	}
}

// embeddedYAML returns the embedded level file for name, or nil.
func embeddedYAML(name string) []byte {
	data, err := embeddedLevels.ReadFile(path.Join("levels", name+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// embeddedNames lists the embedded level names, sorted.
func embeddedNames() []string {
	entries, err := embeddedLevels.ReadDir("levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
