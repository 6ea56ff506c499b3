package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swallow/internal/games/swallow"
	"github.com/vovakirdan/swallow/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the swallow SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the level menu. The SSH
user name is the default player name. Rankings are stored per server,
so every player shares the same boards.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.swallow/host_key

Examples:
  swallow serve                           # Listen on :23234 with auto-generated key
  swallow serve --ssh :2222               # Listen on port 2222
  swallow serve --host-key ./my_host_key  # Use specific host key
  swallow serve --db ./rankings.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = swallow.ID
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if flagReplayDir != "" {
		cfg.ReplayDir = expandHome(flagReplayDir)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting swallow SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
