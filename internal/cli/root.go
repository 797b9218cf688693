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
		Use:   "vibemp",
		Short: "CLI tool for the multiplayer session server API",
		Long: `vibemp is a CLI tool for interacting with the multiplayer session server JSON API.

It supports identity issuance, player registration, room management,
input updates, and voting.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load identity from file if not provided via flag/env
			if err := cfg.LoadIdentity(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Identity)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: VIBEMP_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Identity, "identity", cfg.Identity, "Identity token (env: VIBEMP_IDENTITY)")
	rootCmd.PersistentFlags().StringVar(&cfg.IdentityFile, "identity-file", cfg.IdentityFile, "Identity file path (env: VIBEMP_IDENTITY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newIdentityCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newVoteCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
