// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// DailyContribution is one day of the contribution calendar.
// Days arrive ordered by date ascending and are never mutated after fetch.
type DailyContribution struct {
	Date  string // YYYY-MM-DD
	Count int
}

// StreakResult holds the aggregate contribution metrics derived from the
// calendar. It is recomputed on every run and never persisted.
type StreakResult struct {
	TotalContributions int
	CurrentStreak      int
	LongestStreak      int
}

// Repository is the subset of repository metadata the aggregation needs.
type Repository struct {
	Name     string
	Stars    int
	Forks    int
	Language string
}

// Profile holds the basic user information from the profile endpoint.
type Profile struct {
	Login       string
	Name        string
	Followers   int
	PublicRepos int
	CreatedAt   time.Time
}

// LanguageCount is one entry of the per-language repository tally.
// Slice position carries first-seen order, which breaks count ties.
type LanguageCount struct {
	Name  string
	Repos int
}

// LanguageShare is a tally entry with its display percentage attached.
type LanguageShare struct {
	Name       string
	Repos      int
	Percentage float64
}

// CardStats is everything the renderer needs for one card.
type CardStats struct {
	Profile Profile

	TotalStars int
	TotalForks int

	Streaks      StreakResult
	TopLanguages []LanguageShare

	// Calendar is the full fetched day sequence, oldest first.
	Calendar []DailyContribution

	// ActiveDayMean and ActiveDayPeak summarize contribution counts over
	// days with at least one contribution.
	ActiveDayMean float64
	ActiveDayPeak int
}

// DisplayName returns the profile name, falling back to the login.
func (c *CardStats) DisplayName() string {
	if c.Profile.Name != "" {
		return c.Profile.Name
	}
	return c.Profile.Login
}
