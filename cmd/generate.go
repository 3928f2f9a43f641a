// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/statcardhq/statcard/internal/config"
	"github.com/statcardhq/statcard/internal/gateway"
	"github.com/statcardhq/statcard/internal/render"
	"github.com/statcardhq/statcard/internal/usecase"
)

// runTimeout bounds the whole fetch/compute/render pipeline.
const runTimeout = 45 * time.Second

var generateCmd = &cobra.Command{
	Use:   "generate [username]",
	Short: "Generates the statistics card and writes it to disk",
	Long: `Fetches the user's profile, repositories and contribution calendar from the
GitHub API, computes streaks, totals and top languages, and writes the
rendered SVG card to the output file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load a .env file if one exists; real environment variables win.
		_ = godotenv.Load()

		// Get the verbose flag from the root command to set up the debug logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		debugLog := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			debugLog.SetOutput(os.Stderr) // If verbose, log to standard error.
		}
		// Degradation warnings always go to standard error.
		warnLog := log.New(os.Stderr, "", 0)

		user, _ := cmd.Flags().GetString("user")
		out, _ := cmd.Flags().GetString("out")
		themePath, _ := cmd.Flags().GetString("theme")

		cfg, err := config.Resolve(user, out, themePath, args)
		if err != nil {
			if errors.Is(err, config.ErrMissingUsername) {
				fmt.Fprintln(os.Stderr, "Error: no GitHub username given.")
				fmt.Fprintln(os.Stderr, "Usage: statcard generate <username>")
				fmt.Fprintln(os.Stderr, "Or pass --user, or set GITHUB_USERNAME.")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
		if cfg.Token == "" {
			warnLog.Println("warning: GITHUB_TOKEN is not set; using unauthenticated requests (rate limited, no contribution calendar)")
		}

		theme, err := config.LoadTheme(cfg.ThemePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load theme: %v\n", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		builder := usecase.NewBuilder(githubGateway, warnLog)

		color.New(color.FgCyan).Fprintf(os.Stderr, "Fetching stats for %s...\n", cfg.Username)
		stats, err := builder.Build(ctx, cfg.Username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build stats: %v\n", err)
			os.Exit(1)
		}

		svg := render.Card(stats, theme)
		if err := os.WriteFile(cfg.OutputPath, svg, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write SVG to %s: %v\n", cfg.OutputPath, err)
			os.Exit(1)
		}

		color.New(color.FgGreen).Fprintf(os.Stderr, "Stats saved to %s\n", cfg.OutputPath)
		fmt.Println("Add this to your README.md:")
		fmt.Printf("![GitHub Stats](./%s)\n", cfg.OutputPath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("user", "u", "", "Target GitHub user name (falls back to the positional argument, then GITHUB_USERNAME)")
	generateCmd.Flags().StringP("out", "o", "", "Output SVG file path (falls back to OUTPUT_FILE, then "+config.DefaultOutputPath+")")
	generateCmd.Flags().String("theme", "", "Path to a TOML theme file overriding the card colors")
}
