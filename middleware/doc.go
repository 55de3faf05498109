// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Middleware

  - WithLogging: structured request/completion logs (slog) plus a
    Prometheus latency observation per request
  - NewCORS: cross-origin support with a configurable origin allowlist
    (CORS_ORIGINS), applied around the whole router in main

# Helpers

  - JSONResponse / ErrorResponse: JSON envelope writers
  - ParseJSONBody: request body decoding
  - GetClientIP: client address extraction honoring X-Forwarded-For and
    X-Real-IP, used by the fingerprint derivation
*/
package middleware
