// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/quickpoll/quickpoll/broker"
	"github.com/quickpoll/quickpoll/metrics"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
)

type StreamHandler struct {
	db     *sql.DB
	broker *broker.Broker
}

func NewStreamHandler(db *sql.DB, b *broker.Broker) *StreamHandler {
	return &StreamHandler{db: db, broker: b}
}

// Stream handles GET /polls/:id/sse
//
// One live result stream per connection: subscribe, emit an immediate
// snapshot (so nothing published concurrently with the subscribe is
// missed), then forward every published snapshot until the client
// disconnects or the server shuts down. The subscription is released on
// every exit path.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
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

	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Hidden-poll visibility is decided once, when the stream opens.
	// Unauthorized sessions receive the placeholder for every event; a
	// voter reconnects after voting to see live numbers.
	allowed, err := canSeeResults(h.db, r, poll)
	if err != nil {
		slog.Error("failed to check stream visibility", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ch := h.broker.Subscribe(pollID)
	defer h.broker.Unsubscribe(pollID, ch)

	metrics.StreamSubscribers.Inc()
	defer metrics.StreamSubscribers.Dec()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	placeholder, _ := json.Marshal(models.HiddenSnapshot(pollID))

	// Initial snapshot closes the subscribe/publish race: anything
	// published after Subscribe returned is queued on ch, and this
	// read covers everything before it.
	snapshot, err := ComputeSnapshot(h.db, pollID)
	if err != nil {
		slog.Error("failed to compute initial snapshot", "error", err, "poll_id", pollID)
		return
	}
	initial, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("failed to marshal initial snapshot", "error", err, "poll_id", pollID)
		return
	}
	if !allowed {
		initial = placeholder
	}
	fmt.Fprintf(w, "data: %s\n\n", initial)
	flusher.Flush()

	slog.Info("stream opened", "poll_id", pollID, "remote", r.RemoteAddr)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			// Client disconnected or server shutting down
			slog.Info("stream closed", "poll_id", pollID, "remote", r.RemoteAddr)
			return
		case msg, open := <-ch:
			if !open {
				// Broker shut down
				slog.Info("stream closed by broker", "poll_id", pollID)
				return
			}
			if !allowed {
				msg = placeholder
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
