package cli

import (
	"github.com/spf13/cobra"
)

func newVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Voting commands",
	}

	cmd.AddCommand(newVoteSubmitCmd())
	cmd.AddCommand(newVoteResetCmd())

	return cmd
}

func newVoteSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <S|M|L|XL>",
		Short: "Submit or change your vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"vote": args[0]}

			if err := client.Post("/api/v1/votes", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Vote recorded: " + args[0])
			return nil
		},
	}
}

func newVoteResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all votes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/votes/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Votes reset")
			return nil
		},
	}
}
