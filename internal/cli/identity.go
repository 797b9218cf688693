package cli

import (
	"github.com/spf13/cobra"
)

func newIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Identity management commands",
	}

	cmd.AddCommand(newIdentityNewCmd())
	cmd.AddCommand(newIdentityShowCmd())

	return cmd
}

func newIdentityNewCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Request a new identity token from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result IdentityResult

			if err := client.Post("/api/v1/identity", nil, &result); err != nil {
				return err
			}

			if !noSave {
				if err := cfg.SaveIdentity(result.Identity); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the identity to the identity file")

	return cmd
}

func newIdentityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current identity token",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			if cfg.Identity == "" {
				out.PrintMessage("No identity configured. Run 'vibemp identity new' to get one.")
				return nil
			}
			out.Print(IdentityResult{Identity: cfg.Identity})
			return nil
		},
	}
}
