// Package config resolves the runtime configuration and the card theme.
package config

import (
	"errors"
	"os"
)

// DefaultOutputPath is used when neither the flag nor OUTPUT_FILE is set.
const DefaultOutputPath = "github-stats.svg"

// ErrMissingUsername signals that no target username could be resolved.
var ErrMissingUsername = errors.New("no username given")

// Config carries everything one run needs. It is built once at startup and
// passed to collaborators explicitly.
type Config struct {
	Username   string
	Token      string
	OutputPath string
	ThemePath  string
}

// Resolve builds a Config from flag values, positional arguments and the
// environment. For the username the precedence is the --user flag, then the
// first positional argument, then GITHUB_USERNAME. For the output path it is
// the --out flag, then OUTPUT_FILE, then DefaultOutputPath. The token comes
// from GITHUB_TOKEN and may be empty.
func Resolve(flagUser, flagOut, flagTheme string, args []string) (Config, error) {
	cfg := Config{
		Username:   flagUser,
		Token:      os.Getenv("GITHUB_TOKEN"),
		OutputPath: flagOut,
		ThemePath:  flagTheme,
	}
	if cfg.Username == "" && len(args) > 0 {
		cfg.Username = args[0]
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv("GITHUB_USERNAME")
	}
	if cfg.Username == "" {
		return Config{}, ErrMissingUsername
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT_FILE")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	return cfg, nil
}
