// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/quickpoll/quickpoll/broker"
	"github.com/quickpoll/quickpoll/fingerprint"
	"github.com/quickpoll/quickpoll/metrics"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
)

type VotingHandler struct {
	db     *sql.DB
	broker *broker.Broker
}

func NewVotingHandler(db *sql.DB, b *broker.Broker) *VotingHandler {
	return &VotingHandler{db: db, broker: b}
}

// Vote handles POST /polls/:id/vote
//
// Admission sequence: validate the option, derive the server-side
// fingerprint, look for a prior vote under either fingerprint, then
// insert. The insert is guarded by the vote table's UNIQUE
// (poll_id, fingerprint) constraint; losing that race is reported
// exactly like finding a prior vote. The result snapshot is published
// only after a successful insert.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The option must exist and belong to this poll
	var optionPollID string
	err := h.db.QueryRow(`
		SELECT poll_id FROM option WHERE id = $1
	`, req.OptionID).Scan(&optionPollID)

	if err == sql.ErrNoRows || (err == nil && optionPollID != pollID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option")
		return
	}
	if err != nil {
		slog.Error("failed to query option", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Never trust the client-submitted fingerprint alone; derive one
	// from request metadata and check both.
	serverFP := fingerprint.FromRequest(r, middleware.GetClientIP(r), pollID)

	if h.respondIfAlreadyVoted(w, pollID, req.Fingerprint, serverFP) {
		return
	}

	// No prior vote found: insert, keyed by the server fingerprint.
	_, err = h.db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), pollID, req.OptionID, serverFP, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent request with the same
			// fingerprint. The winner's row is the answer.
			if h.respondIfAlreadyVoted(w, pollID, req.Fingerprint, serverFP) {
				return
			}
			slog.Error("unique violation without a matching vote", "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
			return
		}
		slog.Error("failed to insert vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	metrics.VotesAccepted.Inc()
	slog.Info("vote recorded", "poll_id", pollID, "option_id", req.OptionID)

	h.publishSnapshot(pollID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message: "Vote recorded",
	})
}

// respondIfAlreadyVoted looks for an existing vote under either
// fingerprint and, if found, writes the idempotent already-voted
// response. Returns true when a response was written.
func (h *VotingHandler) respondIfAlreadyVoted(w http.ResponseWriter, pollID, clientFP, serverFP string) bool {
	var votedOptionID, votedOptionText string
	err := h.db.QueryRow(`
		SELECT v.option_id, o.text
		FROM vote v
		JOIN option o ON o.id = v.option_id
		WHERE v.poll_id = $1 AND v.fingerprint IN ($2, $3)
	`, pollID, clientFP, serverFP).Scan(&votedOptionID, &votedOptionText)

	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Error("failed to query existing vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return true
	}

	metrics.VotesDuplicate.Inc()
	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message:  "Already voted",
		VotedFor: votedOptionText,
		OptionID: votedOptionID,
	})
	return true
}

// publishSnapshot recomputes the poll's results and fans them out to
// live streams. The vote is already committed at this point; a failure
// here only costs subscribers one update, so it is logged and swallowed.
func (h *VotingHandler) publishSnapshot(pollID string) {
	snapshot, err := ComputeSnapshot(h.db, pollID)
	if err != nil {
		slog.Error("failed to compute snapshot for publish", "error", err, "poll_id", pollID)
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("failed to marshal snapshot", "error", err, "poll_id", pollID)
		return
	}

	h.broker.Publish(pollID, payload)
}

// isUniqueViolation recognizes unique-constraint errors from both
// supported drivers (Postgres class 23505, SQLite constraint message).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
