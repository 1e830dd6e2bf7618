package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionResumeCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionSignCmd())
	cmd.AddCommand(newSessionCutCmd())
	cmd.AddCommand(newSessionMLECmd())
	cmd.AddCommand(newSessionVetMinCmd())
	cmd.AddCommand(newSessionTradeCmd())
	cmd.AddCommand(newSessionUndoCmd())
	cmd.AddCommand(newSessionResetCmd())
	cmd.AddCommand(newSessionSimulateCmd())
	cmd.AddCommand(newSessionHintCmd())
	cmd.AddCommand(newSessionShareCmd())
	cmd.AddCommand(newSessionImportCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"difficulty": difficulty}
			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: rookie, pro, legend (default pro)")

	return cmd
}

func newSessionResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the saved game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions/resume", map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func playerAction(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}

			var result Session
			path := fmt.Sprintf("/api/v1/sessions/%s/players/%s/%s", args[0], args[1], action)
			if err := client.Post(path, map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionSignCmd() *cobra.Command {
	return playerAction("sign <id> <player>", "Sign a player", "sign")
}

func newSessionCutCmd() *cobra.Command {
	return playerAction("cut <id> <player>", "Cut a player", "cut")
}

func exceptionAction(use, short, action string) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}

			req := map[string]bool{"enabled": !off}
			var result Session
			path := fmt.Sprintf("/api/v1/sessions/%s/players/%s/%s", args[0], args[1], action)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Remove the exception instead of applying it")

	return cmd
}

func newSessionMLECmd() *cobra.Command {
	return exceptionAction("mle <id> <player>", "Toggle the Mid-Level Exception on a player", "mle")
}

func newSessionVetMinCmd() *cobra.Command {
	return exceptionAction("vetmin <id> <player>", "Toggle a Veteran Minimum deal on a player", "vetmin")
}

func newSessionTradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "propose <id> <player>",
		Short: "Propose trading a roster player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TradeProposalResult
			path := fmt.Sprintf("/api/v1/sessions/%s/players/%s/trade", args[0], args[1])
			if err := client.Post(path, map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "confirm <id> <return-player>",
		Short: "Confirm the pending trade",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			returnID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}

			req := map[string]int{"return_player_id": returnID}
			var result Session
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/trade/confirm", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel the pending trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/trade/cancel", args[0]), map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	})

	return cmd
}

func sessionAction(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/%s", args[0], action), map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionUndoCmd() *cobra.Command {
	return sessionAction("undo <id>", "Undo the last roster move", "undo")
}

func newSessionResetCmd() *cobra.Command {
	return sessionAction("reset <id>", "Reset the session to a fresh roster", "reset")
}

func newSessionSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <id>",
		Short: "Re-run the season simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SimulateResult
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/simulate", args[0]), map[string]string{}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <id>",
		Short: "Ask the coach for a tip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HintResult
			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/hint", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Get the build code for sharing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ShareResult
			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/share", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionImportCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "import <code>",
		Short: "Start a game from a shared build code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"code": args[0], "difficulty": difficulty}
			var result Session
			if err := client.Post("/api/v1/sessions/import", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: rookie, pro, legend (default pro)")

	return cmd
}
