package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Theme holds the card colors. Every field is optional in the TOML file;
// missing values keep their defaults.
type Theme struct {
	BackgroundStart string `toml:"background_start"`
	BackgroundEnd   string `toml:"background_end"`
	CardFill        string `toml:"card_fill"`
	Primary         string `toml:"primary"`
	Secondary       string `toml:"secondary"`
	Accent          string `toml:"accent"`
	Text            string `toml:"text"`
	TextSecondary   string `toml:"text_secondary"`
	Border          string `toml:"border"`
	DefaultLanguage string `toml:"default_language"`

	// Languages maps language names to bar colors.
	Languages map[string]string `toml:"languages"`
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return Theme{
		BackgroundStart: "#0d1117",
		BackgroundEnd:   "#161b22",
		CardFill:        "rgba(22, 27, 34, 0.8)",
		Primary:         "#58a6ff",
		Secondary:       "#f778ba",
		Accent:          "#7ee787",
		Text:            "#c9d1d9",
		TextSecondary:   "#8b949e",
		Border:          "rgba(88, 166, 255, 0.2)",
		DefaultLanguage: "#858585",
		Languages: map[string]string{
			"Python":     "#3572A5",
			"JavaScript": "#f1e05a",
			"TypeScript": "#3178c6",
			"Java":       "#b07219",
			"Go":         "#00ADD8",
			"Rust":       "#dea584",
			"C++":        "#f34b7d",
			"Ruby":       "#701516",
			"PHP":        "#4F5D95",
			"Swift":      "#ffac45",
		},
	}
}

// LanguageColor returns the bar color for a language.
func (t Theme) LanguageColor(name string) string {
	if c, ok := t.Languages[name]; ok {
		return c
	}
	return t.DefaultLanguage
}

// LoadTheme reads theme overrides from a TOML file and merges them over the
// defaults. An empty path or a missing file yields the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("failed to stat theme file: %w", err)
	}
	var overrides Theme
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return theme, fmt.Errorf("failed to decode theme file: %w", err)
	}
	mergeColor(&theme.BackgroundStart, overrides.BackgroundStart)
	mergeColor(&theme.BackgroundEnd, overrides.BackgroundEnd)
	mergeColor(&theme.CardFill, overrides.CardFill)
	mergeColor(&theme.Primary, overrides.Primary)
	mergeColor(&theme.Secondary, overrides.Secondary)
	mergeColor(&theme.Accent, overrides.Accent)
	mergeColor(&theme.Text, overrides.Text)
	mergeColor(&theme.TextSecondary, overrides.TextSecondary)
	mergeColor(&theme.Border, overrides.Border)
	mergeColor(&theme.DefaultLanguage, overrides.DefaultLanguage)
	for name, color := range overrides.Languages {
		theme.Languages[name] = color
	}
	return theme, nil
}

func mergeColor(dst *string, override string) {
	if override != "" {
		*dst = override
	}
}
