// swallow is a terminal arcade game: steer a swallow, collect falling stars
// and dodge the hunters before the timer runs out.
//
// Usage:
//
//	swallow levels            - List available levels
//	swallow play [level]      - Play a level
//	swallow menu              - Pick levels interactively
//	swallow serve             - Start SSH server for remote play
//	swallow scores [level]    - Show rankings
//	swallow replay <file>     - Verify a recorded round
//
// Global flags:
//
//	--seed <value>       - Override the level's RNG seed
//	--db <path>          - Rankings database (default: ~/.swallow/rankings.db)
//	--config <path>      - Play a level file instead of a named level
//	--difficulty <name>  - easy, normal, hard or fixed
//	--replay-dir <path>  - Where finished rounds are recorded
//	--log-file <path>    - Write game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/swallow/internal/games/swallow"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagReplayDir  string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swallow",
	Short: "Swallow - collect stars, dodge hunters",
	Long: `Swallow is a terminal arcade game. Steer the swallow around the board,
collect the falling stars before time runs out and keep away from the
hunters that patrol and dash at you.

Available commands:
  levels   - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View rankings
  replay   - Re-run a recorded round and check its score

Examples:
  swallow levels
  swallow play storm --difficulty hard
  swallow menu
  swallow serve --ssh :2222
  swallow scores meadow`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = the level's own seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.swallow/rankings.db", "Path to rankings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom level YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagReplayDir, "replay-dir", "~/.swallow/replays", "Directory for round recordings (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
