package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded round and check its score",
	Long: `Loads a round recording (` + replay.Ext + `) and simulates it again from its
seed and commands. The round is verified when the replayed score and
outcome equal the recorded ones.

Examples:
  swallow replay ~/.swallow/replays/meadow-<id>.swr`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.Load(expandHome(args[0]))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})
	if !flagDebug {
		logger.SetLevel(log.WarnLevel)
	}

	v, err := replay.Play(ctx, rec, logger)
	if err != nil && !errors.Is(err, replay.ErrIncomplete) {
		return err
	}

	fmt.Printf("Round    %s\n", rec.ID)
	fmt.Printf("Level    %s (%s)\n", rec.Level.Name, orDefault(rec.Difficulty, "normal"))
	fmt.Printf("Player   %s\n", rec.Username)
	fmt.Printf("Recorded %s\n", rec.RecordedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Ticks    %d\n", v.Ticks)
	fmt.Printf("Stars    %d of %d\n", v.Final.Collected, rec.Level.StarQuota)
	fmt.Printf("HP       %d\n", v.Final.HP)
	fmt.Printf("Time     %.1fs left\n", v.Final.TimeLeft)
	fmt.Printf("Score    %d (recorded %d)\n", v.Score, rec.Score)

	if err != nil {
		return fmt.Errorf("round did not finish: %w", err)
	}
	if !v.Match {
		return fmt.Errorf("replay does not match the recorded outcome")
	}
	fmt.Println("Verified")
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
