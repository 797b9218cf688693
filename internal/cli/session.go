package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session lifecycle commands",
	}

	cmd.AddCommand(newSessionConnectCmd())
	cmd.AddCommand(newSessionDisconnectCmd())
	cmd.AddCommand(newSessionRegisterCmd())

	return cmd
}

func newSessionConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Announce this identity as connected",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/session/connect", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Connected")
			return nil
		},
	}
}

func newSessionDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Announce this identity as disconnected",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/session/disconnect", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Disconnected")
			return nil
		},
	}
}

func newSessionRegisterCmd() *cobra.Command {
	var characterClass, roomName string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a player for this identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username":        args[0],
				"character_class": characterClass,
				"room_name":       roomName,
			}

			var result Player

			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&characterClass, "class", "warrior", "Character class")
	cmd.Flags().StringVar(&roomName, "room", "lobby", "Room to register into")

	return cmd
}
