// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insight

import (
	"sort"

	"github.com/quickpoll/quickpoll/models"
)

// Thresholds for the rule set. Ratios are relative to total votes.
const (
	// MinVotes is the minimum total before any insight is produced.
	MinVotes = 20
	// FavoriteShare is the vote share that makes an option a clear favorite.
	FavoriteShare = 0.6
	// LeadShare is the margin over the runner-up that counts as comfortable.
	LeadShare = 0.1
	// CloseShare is the margin under which the race is called close.
	CloseShare = 0.05
)

// ForResults maps a results snapshot to an optional human-readable
// sentence. Returns nil when no rule fires. Pure function of the counts.
func ForResults(results []models.OptionCount) *string {
	total := 0
	for _, r := range results {
		total += r.Votes
	}
	if total < MinVotes {
		return nil
	}

	sorted := make([]models.OptionCount, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	top := sorted[0]

	if float64(top.Votes)/float64(total) >= FavoriteShare {
		s := "Clear favorite emerging: " + top.Option
		return &s
	}

	if len(sorted) > 1 {
		diff := float64(top.Votes-sorted[1].Votes) / float64(total)
		if diff >= LeadShare {
			s := top.Option + " holds a comfortable lead."
			return &s
		}
		if diff <= CloseShare {
			s := "It's a close race!"
			return &s
		}
	}

	return nil
}
