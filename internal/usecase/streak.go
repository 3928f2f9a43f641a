// Package usecase contains the business logic of the application.
package usecase

import "github.com/statcardhq/statcard/internal/domain"

// ComputeStreaks scans the day sequence from the most recent day backward
// and returns the current and longest consecutive-active-day streaks.
//
// The running counter of active days (count > 0) resets on a zero day. The
// current streak is latched at the first reset and never overwritten; if the
// scan ends without a reset, the whole leading run is the current streak.
// The longest streak is the maximum counter value seen anywhere.
func ComputeStreaks(days []domain.DailyContribution) (current, longest int) {
	run := 0
	latched := false
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count > 0 {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		if !latched {
			current = run
			latched = true
		}
		run = 0
	}
	if !latched {
		current = run
	}
	return current, longest
}
