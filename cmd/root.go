// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statcard",
	Short: "A CLI tool to render GitHub profile statistics as an SVG card.",
	Long: `statcard fetches a GitHub user's public activity (profile, repositories
and contribution calendar), computes aggregate statistics such as contribution
streaks and top languages, and writes them as an SVG card for embedding in a
profile README.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
