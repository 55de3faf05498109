// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the QuickPoll API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - PollHandler: poll creation and detail (db)
  - VotingHandler: vote admission and result publishing (db, broker)
  - ResultsHandler: results snapshots with hidden-mode handling (db)
  - StreamHandler: live SSE result streams (db, broker)

# Endpoints

	POST /polls              → CreatePoll (2-4 options, optional hidden mode)
	GET  /polls/{id}         → GetPoll
	POST /polls/{id}/vote    → Vote
	GET  /polls/{id}/results → GetResults
	GET  /polls/{id}/sse     → Stream

# Vote Admission

Vote derives a server-side fingerprint from request metadata, checks the
poll's votes for either that fingerprint or the client-submitted one,
and inserts only when neither matches. The vote table's UNIQUE
(poll_id, fingerprint) constraint closes the remaining check-then-insert
race: a constraint violation is converted into the same already-voted
response, never an error. Exactly one snapshot is published to the
broker per accepted vote, after the insert commits.

# Results Aggregation

ComputeSnapshot (snapshot.go) counts votes per option in creation order
and attaches the optional insight annotation. Hidden polls substitute a
zeroed placeholder per caller; the broker always carries live numbers.

# Live Streams

Stream subscribes to the poll's topic, sends one immediate snapshot,
then forwards every published snapshot until the connection closes. The
subscription is removed on every exit path.
*/
package handlers
