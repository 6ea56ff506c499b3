package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/games/swallow"
	"github.com/vovakirdan/swallow/internal/platform/tui"
	"github.com/vovakirdan/swallow/internal/registry"
	"github.com/vovakirdan/swallow/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start swallow with a level picker",
	Long: `Start swallow in interactive menu mode.

Pick a level and difficulty, enter your name and play. After a round
you return to the menu; Tab opens the rankings.

Controls:
  Up/Down/j/k     - Choose level
  Left/Right/h/l  - Choose difficulty
  N               - Edit your name
  Enter/Space     - Play
  Tab             - Rankings
  Q               - Quit

Examples:
  swallow menu
  swallow menu --db ./rankings.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	deps, cleanup, err := openDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := runtimeConfig()
	username := storage.DefaultUsername

	for {
		menuResult, err := tui.RunMenu(deps.Store, cfg, username)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		username = menuResult.Username

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(deps.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		roundDeps := deps
		roundDeps.Difficulty = string(menuResult.Difficulty)
		opts := registry.Options{
			Level:      menuResult.Level,
			Difficulty: roundDeps.Difficulty,
			Username:   username,
		}
		game, err := tui.NewGame(swallow.ID, opts, deps.Logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		back, err := tui.Run(game, roundDeps, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
