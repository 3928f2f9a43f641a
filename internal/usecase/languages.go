package usecase

import (
	"sort"

	"github.com/statcardhq/statcard/internal/domain"
)

// topLanguageCount is how many languages the card shows.
const topLanguageCount = 5

// TallyLanguages counts repositories per primary language. Repositories
// without a language are skipped. The returned slice preserves the order in
// which each language was first seen, which later breaks count ties.
func TallyLanguages(repos []domain.Repository) []domain.LanguageCount {
	index := make(map[string]int)
	var tally []domain.LanguageCount
	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		i, ok := index[r.Language]
		if !ok {
			i = len(tally)
			index[r.Language] = i
			tally = append(tally, domain.LanguageCount{Name: r.Language})
		}
		tally[i].Repos++
	}
	return tally
}

// TopLanguages keeps the top five tally entries by repository count
// (descending, ties broken by first-seen order) and attaches each one's
// percentage of the retained total. A zero total yields zero percentages.
func TopLanguages(tally []domain.LanguageCount) []domain.LanguageShare {
	if len(tally) == 0 {
		return nil
	}

	ranked := make([]domain.LanguageCount, len(tally))
	copy(ranked, tally)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Repos > ranked[j].Repos
	})
	if len(ranked) > topLanguageCount {
		ranked = ranked[:topLanguageCount]
	}

	var total int
	for _, lc := range ranked {
		total += lc.Repos
	}

	shares := make([]domain.LanguageShare, 0, len(ranked))
	for _, lc := range ranked {
		var pct float64
		if total > 0 {
			pct = float64(lc.Repos) / float64(total) * 100.0
		}
		shares = append(shares, domain.LanguageShare{
			Name:       lc.Name,
			Repos:      lc.Repos,
			Percentage: pct,
		})
	}
	return shares
}
