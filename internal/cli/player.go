package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerMeCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerInputCmd())

	return cmd
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the player for this identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players in your room",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerInputCmd() *cobra.Command {
	var (
		forward, backward, left, right  bool
		sprint, jump, attack, castSpell bool
		sequence                        uint32
		yaw                             float64
		animation                       string
	)

	cmd := &cobra.Command{
		Use:   "input",
		Short: "Submit an input snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"input": map[string]any{
					"forward":    forward,
					"backward":   backward,
					"left":       left,
					"right":      right,
					"sprint":     sprint,
					"jump":       jump,
					"attack":     attack,
					"cast_spell": castSpell,
					"sequence":   sequence,
				},
				"rotation":  map[string]float64{"x": 0, "y": yaw, "z": 0},
				"animation": animation,
			}

			if err := client.Put("/api/v1/players/me/input", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Input submitted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&forward, "forward", false, "Move forward")
	cmd.Flags().BoolVar(&backward, "backward", false, "Move backward")
	cmd.Flags().BoolVar(&left, "left", false, "Strafe left")
	cmd.Flags().BoolVar(&right, "right", false, "Strafe right")
	cmd.Flags().BoolVar(&sprint, "sprint", false, "Sprint")
	cmd.Flags().BoolVar(&jump, "jump", false, "Jump")
	cmd.Flags().BoolVar(&attack, "attack", false, "Attack")
	cmd.Flags().BoolVar(&castSpell, "cast", false, "Cast spell")
	cmd.Flags().Uint32Var(&sequence, "seq", 0, "Input sequence number")
	cmd.Flags().Float64Var(&yaw, "yaw", 0, "Facing yaw in radians")
	cmd.Flags().StringVar(&animation, "animation", "", "Animation name")

	return cmd
}
