// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quickpoll/quickpoll/models"
)

// Seed inserts a demo poll for local development. Returns the poll ID.
func Seed(db *sql.DB) (string, error) {
	pollID := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(models.DefaultTTLHours * time.Hour)

	_, err := db.Exec(`
		INSERT INTO poll (id, question, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, pollID, "Favorite programming language?", now, expiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to seed poll: %w", err)
	}

	options := []string{"Python", "JavaScript", "Java", "C++"}
	for i, text := range options {
		_, err := db.Exec(`
			INSERT INTO option (id, poll_id, text, position)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), pollID, text, i)
		if err != nil {
			return "", fmt.Errorf("failed to seed option %q: %w", text, err)
		}
	}

	return pollID, nil
}
