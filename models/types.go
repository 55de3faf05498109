// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Poll option count limits
const (
	MinOptions = 2
	MaxOptions = 4
)

// DefaultTTLHours is how long a poll stays open when no ttl is given.
const DefaultTTLHours = 24

// Request types

type CreatePollRequest struct {
	Question             string   `json:"question"`
	Options              []string `json:"options"`
	Hours                int      `json:"hours"`
	HideResultsUntilVote bool     `json:"hide_results_until_vote"`
}

type VoteRequest struct {
	OptionID    string `json:"option_id"`
	Fingerprint string `json:"fingerprint"`
}

// Response types

type CreatePollResponse struct {
	PollID       string `json:"id"`
	RevealSecret string `json:"hide_until_vote_secret,omitempty"`
}

type VoteResponse struct {
	Message  string `json:"message"`
	VotedFor string `json:"voted_for,omitempty"`
	OptionID string `json:"option_id,omitempty"`
}

type PollDetailResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Expired   bool      `json:"expired"`
	ClosesIn  string    `json:"closes_in"`
	Options   []Option  `json:"options"`
}

// Domain types

type Poll struct {
	ID           string    `json:"id"`
	Question     string    `json:"question"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	RevealSecret *string   `json:"-"` // Never expose after creation
}

// Expired reports whether the poll has passed its expiry time.
// Derived, never stored.
func (p Poll) Expired() bool {
	return time.Now().After(p.ExpiresAt)
}

type Option struct {
	ID       string `json:"id"`
	PollID   string `json:"poll_id"`
	Text     string `json:"text"`
	Position int    `json:"-"` // creation order within the poll
}

type Vote struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	OptionID    string    `json:"option_id"`
	Fingerprint string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`
}

// Results types

// OptionCount is one (option text, vote count) pair of a snapshot,
// ordered by option creation order.
type OptionCount struct {
	Option string `json:"option"`
	Votes  int    `json:"votes"`
}

// ResultsSnapshot is a point-in-time view of a poll's aggregated votes.
// Computed on demand, never persisted.
type ResultsSnapshot struct {
	PollID          string        `json:"poll_id"`
	TotalVotes      int           `json:"total_votes"`
	Results         []OptionCount `json:"results"`
	Insight         *string       `json:"insight"`
	HiddenUntilVote bool          `json:"hidden_until_vote,omitempty"`
}

// HiddenSnapshot is the zeroed placeholder served to callers who may not
// see a hidden poll's numbers yet.
func HiddenSnapshot(pollID string) ResultsSnapshot {
	return ResultsSnapshot{
		PollID:          pollID,
		TotalVotes:      0,
		Results:         []OptionCount{},
		HiddenUntilVote: true,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
