package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/montanaflynn/stats"

	"github.com/statcardhq/statcard/internal/domain"
	"github.com/statcardhq/statcard/internal/gateway"
)

// Builder is the use case for assembling the card statistics.
// It orchestrates fetching and combines the results.
type Builder struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(fetcher gateway.Fetcher, logger *log.Logger) *Builder {
	return &Builder{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Build fetches the user's profile, repositories and contribution calendar
// sequentially and derives the card statistics.
//
// Only the profile fetch is fatal. Repository and calendar failures are
// reported as a diagnostic line and degrade to empty data, so the card is
// still produced with zeroed metrics for the missing parts.
func (b *Builder) Build(ctx context.Context, user string) (*domain.CardStats, error) {
	profile, err := b.fetcher.FetchUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}

	repos, err := b.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		b.logger.Printf("warning: fetching repositories failed, continuing without them: %v", err)
		repos = nil
	}

	total, days, err := b.fetcher.FetchContributionCalendar(ctx, user)
	if err != nil {
		b.logger.Printf("warning: fetching contribution calendar failed, continuing without it: %v", err)
		total, days = 0, nil
	}

	card := &domain.CardStats{
		Profile:  *profile,
		Calendar: days,
	}

	for _, r := range repos {
		card.TotalStars += r.Stars
		card.TotalForks += r.Forks
	}
	card.TopLanguages = TopLanguages(TallyLanguages(repos))

	current, longest := ComputeStreaks(days)
	card.Streaks = domain.StreakResult{
		TotalContributions: total,
		CurrentStreak:      current,
		LongestStreak:      longest,
	}

	card.ActiveDayMean, card.ActiveDayPeak = summarizeActiveDays(days)

	return card, nil
}

// summarizeActiveDays reports the mean and peak contribution count over days
// with at least one contribution. Both are zero when no day is active.
func summarizeActiveDays(days []domain.DailyContribution) (float64, int) {
	var active []float64
	for _, d := range days {
		if d.Count > 0 {
			active = append(active, float64(d.Count))
		}
	}
	if len(active) == 0 {
		return 0, 0
	}
	mean, err := stats.Mean(active)
	if err != nil {
		return 0, 0
	}
	peak, err := stats.Max(active)
	if err != nil {
		return mean, 0
	}
	return mean, int(peak)
}
