// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options (2-4), hours, hide_results_until_vote
  - VoteRequest: option_id, fingerprint

# Response Types

Types for JSON responses:

  - CreatePollResponse: id, hide_until_vote_secret (only when hidden)
  - VoteResponse: message, voted_for, option_id
  - PollDetailResponse: poll metadata with options and derived expiry
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: question, expiry, optional reveal secret
  - Option: voting option with text and creation position
  - Vote: one accepted vote, keyed by fingerprint
  - OptionCount: (option text, vote count) pair
  - ResultsSnapshot: computed per-option counts, total, optional insight

# Snapshots

ResultsSnapshot is never persisted: it is recomputed on every results
request and on every accepted vote before being published to live
streams. HiddenSnapshot returns the placeholder used for polls created
with hide_results_until_vote when the caller has not voted and does not
hold the reveal secret.
*/
package models
