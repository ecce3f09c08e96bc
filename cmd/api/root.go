// ABOUTME: Root cobra command; runs the server when no subcommand is given
// ABOUTME: Subcommands: serve, token, resolve

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "wholenote-server",
	Short:         "Feed and link preview API for Farcaster casts that share Spotify links",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, tokenCmd, resolveCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
