// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
)

type PollHandler struct {
	db *sql.DB
}

func NewPollHandler(db *sql.DB) *PollHandler {
	return &PollHandler{db: db}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Question == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}
	if len(req.Question) > 120 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question must be at most 120 characters")
		return
	}
	if len(req.Options) < models.MinOptions || len(req.Options) > models.MaxOptions {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll must have 2-4 options")
		return
	}
	for _, text := range req.Options {
		if text == "" || len(text) > 200 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "options must be 1-200 characters")
			return
		}
	}

	hours := req.Hours
	if hours <= 0 {
		hours = models.DefaultTTLHours
	}

	pollID := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(time.Duration(hours) * time.Hour)

	// Polls created hidden get a reveal secret, returned only here.
	var revealSecret *string
	if req.HideResultsUntilVote {
		s := uuid.NewString()
		revealSecret = &s
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, created_at, expires_at, reveal_secret)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, req.Question, now, expiresAt, revealSecret)

	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	for i, text := range req.Options {
		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, text, position)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), pollID, text, i)

		if err != nil {
			slog.Error("failed to insert option", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "options", len(req.Options), "hidden", req.HideResultsUntilVote)

	resp := models.CreatePollResponse{PollID: pollID}
	if revealSecret != nil {
		resp.RevealSecret = *revealSecret
	}
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// GetPoll handles GET /polls/:id
// Returns poll details and options, but not results
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.db.Query(`
		SELECT id, poll_id, text, position
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)

	if err != nil {
		slog.Error("failed to query options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position); err != nil {
			slog.Error("failed to scan option", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		options = append(options, opt)
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollDetailResponse{
		ID:        poll.ID,
		Question:  poll.Question,
		CreatedAt: poll.CreatedAt,
		ExpiresAt: poll.ExpiresAt,
		Expired:   poll.Expired(),
		ClosesIn:  humanize.Time(poll.ExpiresAt),
		Options:   options,
	})
}

// loadPoll fetches a poll by ID. Returns sql.ErrNoRows when absent.
func loadPoll(db *sql.DB, pollID string) (models.Poll, error) {
	var poll models.Poll
	err := db.QueryRow(`
		SELECT id, question, created_at, expires_at, reveal_secret
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.CreatedAt, &poll.ExpiresAt, &poll.RevealSecret)
	return poll, err
}
