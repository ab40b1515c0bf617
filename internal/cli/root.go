package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "bbingo",
		Short: "CLI client for the buzzword bingo API",
		Long: `bbingo is a CLI client for the buzzword bingo JSON API.

It plays a full session: start a board, mark tiles as buzzwords are
heard, and watch for completed rows, columns, and diagonals. The current
session ID is remembered between invocations so most commands need no
arguments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load remembered session ID if not provided via flag/env
			if err := cfg.LoadSessionID(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: BBINGO_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionID, "session", cfg.SessionID, "Session ID (env: BBINGO_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: BBINGO_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newDismissCmd())
	rootCmd.AddCommand(newDropCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
