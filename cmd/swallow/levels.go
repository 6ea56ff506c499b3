package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every level swallow can load by name: the embedded levels plus
any YAML files in ./levels and ~/.swallow/levels.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	levels := config.ListLevels()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Best scores are a bonus; the list works without a database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	maxNameLen := len("Name")
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-8s  %s\n", maxNameLen, "Name", "Level", "Source", "Best")
	fmt.Printf("  %-*s  %-5s  %-8s  %s\n", maxNameLen, "----", "-----", "------", "----")

	for _, l := range levels {
		best := "-"
		if store != nil {
			if hs, err := store.HighScore(l.Name); err == nil && hs > 0 {
				best = fmt.Sprintf("%d", hs)
			}
		}
		fmt.Printf("  %-*s  %-5d  %-8s  %s\n", maxNameLen, l.Name, l.Number, l.Source, best)
	}

	fmt.Println()
	fmt.Println("Run 'swallow play <name>' to play a level.")
	return nil
}
