// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// Sentinel values used when a request component is unavailable, so the
// same client still hashes to the same fingerprint.
const (
	UnknownValue = "unknown"
	NoTokenValue = "no-token"
	TokenCookie  = "token"
)

// Generate derives a deterministic voter fingerprint from connection
// metadata and an optional client token. Same inputs always produce the
// same fingerprint; there is no attempt to defeat a motivated attacker.
func Generate(clientAddr, userAgent, pollID, token string) string {
	if clientAddr == "" {
		clientAddr = UnknownValue
	}
	if userAgent == "" {
		userAgent = UnknownValue
	}
	if token == "" {
		token = NoTokenValue
	}

	base := clientAddr + ":" + userAgent + ":" + pollID + ":" + token
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}

// FromRequest derives the server-side fingerprint for a request, reading
// the client address, User-Agent, and the optional token cookie.
// clientAddr should be the already-extracted client IP (see
// middleware.GetClientIP); it is passed in rather than read from
// r.RemoteAddr so proxy headers are honored consistently.
func FromRequest(r *http.Request, clientAddr, pollID string) string {
	token := ""
	if c, err := r.Cookie(TokenCookie); err == nil && c != nil {
		token = c.Value
	}
	return Generate(clientAddr, r.UserAgent(), pollID, token)
}
