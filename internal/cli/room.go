package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomListCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomLeaveCmd())
	cmd.AddCommand(newRoomConfigCmd())

	return cmd
}

func newRoomCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[0]}

			var result Room

			if err := client.Post("/api/v1/rooms", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Room

			if err := client.Get("/api/v1/rooms", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "join <name>",
		Short: "Join a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"password": password}

			var result Room

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/join", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Room password")

	return cmd
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Leave your current room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/rooms/leave", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left room")
			return nil
		},
	}
}

func newRoomConfigCmd() *cobra.Command {
	var (
		password   string
		maxPlayers uint32
	)

	cmd := &cobra.Command{
		Use:   "config <name>",
		Short: "Update room configuration (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("password") {
				req["password"] = password
			}
			if cmd.Flags().Changed("max-players") {
				req["max_players"] = maxPlayers
			}

			var result Room

			if err := client.Patch(fmt.Sprintf("/api/v1/rooms/%s/config", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Room password (empty clears it)")
	cmd.Flags().Uint32Var(&maxPlayers, "max-players", 0, "Maximum player count")

	return cmd
}
