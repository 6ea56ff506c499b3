package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresBest  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show rankings",
	Long: `Without a level, summarizes every level that has rankings.
With a level, shows its top rankings.

Examples:
  swallow scores
  swallow scores meadow
  swallow scores storm --best
  swallow scores night --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rankings to show")
	scoresCmd.Flags().BoolVar(&flagScoresBest, "best", false, "Show only each player's best round")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the level's rankings")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rankings database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a level")
		}
		return printAllStats(store)
	}

	level := args[0]
	if flagScoresClear {
		if err := store.ClearScores(level); err != nil {
			return err
		}
		fmt.Printf("Cleared rankings for %s.\n", level)
		return nil
	}
	return printRankings(store, level)
}

func printRankings(store *storage.Store, level string) error {
	var (
		rankings []storage.Ranking
		err      error
	)
	if flagScoresBest {
		rankings, err = store.BestByUser(level, flagScoresLimit)
	} else {
		rankings, err = store.TopScores(level, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving rankings: %w", err)
	}

	fmt.Printf("Rankings - %s\n", level)
	fmt.Println()

	if len(rankings) == 0 {
		fmt.Println("No rankings recorded yet.")
		fmt.Println()
		fmt.Printf("Win a round of 'swallow play %s' to set the first one!\n", level)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, r := range rankings {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, r.Username, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetLevelStats(level); err == nil && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Players: %d  Average: %.0f\n",
			stats.HighScore, stats.Rounds, stats.Players, stats.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No rankings recorded yet.")
		return nil
	}

	levels := make([]string, 0, len(all))
	for name := range all {
		levels = append(levels, name)
	}
	sort.Strings(levels)

	fmt.Printf("  %-12s  %-8s  %-8s  %-10s  %s\n", "Level", "Rounds", "Players", "Best", "Last played")
	fmt.Printf("  %-12s  %-8s  %-8s  %-10s  %s\n", "-----", "------", "-------", "----", "-----------")
	for _, name := range levels {
		s := all[name]
		fmt.Printf("  %-12s  %-8d  %-8d  %-10d  %s\n",
			name, s.Rounds, s.Players, s.HighScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
