package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/games/swallow"
	"github.com/vovakirdan/swallow/internal/platform/tui"
	"github.com/vovakirdan/swallow/internal/registry"
	"github.com/vovakirdan/swallow/internal/storage"
)

var flagUser string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a round of the given level (default: meadow).

Controls:
  W/A/S/D, Arrows  - Steer the swallow
  P/+  O/-         - Speed up / slow down
  E/Space          - Call the albatross (escape to a safe spot)
  Q                - Abandon the round
  R                - Restart (after the round is over)
  B/Esc            - Leave (after the round is over)
  Ctrl+S           - Save a screenshot
  Ctrl+C           - Quit

Difficulty options:
  easy   - Slower escalation, shorter albatross cooldown
  normal - The level as written
  hard   - Faster escalation, longer albatross cooldown
  fixed  - No escalation at all

Examples:
  swallow play
  swallow play storm --difficulty hard
  swallow play --config ./my-level.yaml --user ann
  swallow play night --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagUser, "user", "u", storage.DefaultUsername, "Name recorded with your score")
}

func runPlay(_ *cobra.Command, args []string) error {
	level := ""
	if len(args) > 0 {
		level = args[0]
	}

	deps, cleanup, err := openDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := registry.Options{
		Level:      level,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Username:   flagUser,
	}
	game, err := tui.NewGame(swallow.ID, opts, deps.Logger)
	if err != nil {
		return fmt.Errorf("%w\nRun 'swallow levels' to see available levels", err)
	}

	if _, err := tui.Run(game, deps, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
