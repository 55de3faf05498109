// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/quickpoll/quickpoll/insight"
	"github.com/quickpoll/quickpoll/models"
)

// ComputeSnapshot aggregates the poll's current vote counts.
// Options appear in creation order; total is the sum of all counts.
// The result is never cached - every call reflects the committed vote
// state at call time.
func ComputeSnapshot(db *sql.DB, pollID string) (models.ResultsSnapshot, error) {
	rows, err := db.Query(`
		SELECT o.text, COUNT(v.id)
		FROM option o
		LEFT JOIN vote v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.text, o.position
		ORDER BY o.position
	`, pollID)
	if err != nil {
		return models.ResultsSnapshot{}, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.OptionCount{}
	total := 0
	for rows.Next() {
		var oc models.OptionCount
		if err := rows.Scan(&oc.Option, &oc.Votes); err != nil {
			return models.ResultsSnapshot{}, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, oc)
		total += oc.Votes
	}
	if err := rows.Err(); err != nil {
		return models.ResultsSnapshot{}, fmt.Errorf("failed to read results: %w", err)
	}

	return models.ResultsSnapshot{
		PollID:     pollID,
		TotalVotes: total,
		Results:    results,
		Insight:    insight.ForResults(results),
	}, nil
}

// HasVoted reports whether any vote for the poll carries the given
// fingerprint.
func HasVoted(db *sql.DB, pollID, fp string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote WHERE poll_id = $1 AND fingerprint = $2
		)
	`, pollID, fp).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check prior vote: %w", err)
	}
	return exists, nil
}
