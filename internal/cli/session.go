package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// sessionPath builds the API path for the current session
func sessionPath(suffix string) (string, error) {
	if cfg.SessionID == "" {
		return "", fmt.Errorf("no session; run 'bbingo new' first or pass --session")
	}
	return "/api/v1/sessions/" + cfg.SessionID + suffix, nil
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new session with a fresh board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionState

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveSessionID(result.ID); err != nil {
				return fmt.Errorf("failed to remember session: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current board and phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			var result SessionState
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <row> <col>",
		Short: "Toggle the mark on a tile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("row must be a number 0-4")
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("col must be a number 0-4")
			}

			path, err := sessionPath("/toggle")
			if err != nil {
				return err
			}

			var result SessionState
			body := map[string]int{"row": row, "col": col}
			if err := client.Post(path, body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Regenerate the board with fresh random phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/board")
			if err != nil {
				return err
			}

			var result SessionState
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all marks, keeping the same phrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/reset")
			if err != nil {
				return err
			}

			var result SessionState
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDismissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss",
		Short: "Dismiss the celebration banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/dismiss")
			if err != nil {
				return err
			}

			var result SessionState
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Delete the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			if err := client.Delete(path); err != nil {
				return err
			}

			if err := cfg.ClearSessionID(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}
