// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	quickpoll -p 3000 -t postgres -d "postgres://..."

# Settings

  - PORT (-p): server port (default: 8000)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string; required for postgres,
    defaults to a local file DSN for sqlite
  - CORS_ORIGINS (-cors): comma-separated allowed origins (default "*")
  - -seed: insert a demo poll at startup (dev only, no env equivalent)
*/
package cliparse
