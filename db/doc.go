// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and dev seeding.

# Schema Creation

CreateSchema initializes all required tables for the configured driver
("postgres" or "sqlite"):

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - poll: question, creation/expiry timestamps, optional reveal secret
  - option: voting options per poll, with creation position
  - vote: one accepted vote per fingerprint per poll

# Relationships

	poll 1──* option
	poll 1──* vote
	option 1──* vote

All foreign keys use ON DELETE CASCADE.

# Constraints

vote carries UNIQUE (poll_id, fingerprint). This is the single source of
truth for "already voted": concurrent submissions with the same
fingerprint race to the insert, the loser hits the constraint, and the
handler converts that violation into the same idempotent already-voted
response as the pre-check. The invariant is deliberately not enforced in
application code alone.

# Seeding

Seed inserts a demo poll ("Favorite programming language?") for local
development; wired to the -seed flag.
*/
package db
