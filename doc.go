// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QuickPoll API server.

QuickPoll is a short-lived polling service: create a poll with 2-4
options, share the link, and watch results update live in every open
tab. Duplicate votes are detected via best-effort client fingerprints;
live updates are delivered over Server-Sent Events.

# Starting the Server

The server runs on SQLite by default:

	go run main.go -seed

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags or env; see package cliparse):

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string
  - CORS_ORIGINS (-cors): allowed origins for browser clients
  - -seed: insert a demo poll at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results, sse)
  - broker: in-process per-poll pub/sub behind live streams
  - fingerprint: voter fingerprint derivation
  - insight: rule-based result annotations
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - metrics: Prometheus collectors
  - db: schema creation and dev seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
