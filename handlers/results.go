// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/quickpoll/quickpoll/fingerprint"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
)

type ResultsHandler struct {
	db *sql.DB
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{db: db}
}

// GetResults handles GET /polls/:id/results
// For hidden polls, callers who have not voted and do not present the
// reveal secret get the zeroed placeholder instead of live numbers.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := loadPoll(h.db, pollID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	allowed, err := canSeeResults(h.db, r, poll)
	if err != nil {
		slog.Error("failed to check results visibility", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !allowed {
		middleware.JSONResponse(w, http.StatusOK, models.HiddenSnapshot(pollID))
		return
	}

	snapshot, err := ComputeSnapshot(h.db, pollID)
	if err != nil {
		slog.Error("failed to compute snapshot", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// canSeeResults applies the hidden-until-vote rule for one caller.
// Non-hidden polls are always visible; hidden polls require a prior
// vote from this caller's fingerprint or the matching secret query
// param. The transform is per-caller - the underlying data and the
// snapshots published to live streams are unaffected.
func canSeeResults(db *sql.DB, r *http.Request, poll models.Poll) (bool, error) {
	if poll.RevealSecret == nil {
		return true, nil
	}

	if r.URL.Query().Get("secret") == *poll.RevealSecret {
		return true, nil
	}

	fp := fingerprint.FromRequest(r, middleware.GetClientIP(r), poll.ID)
	return HasVoted(db, poll.ID, fp)
}
