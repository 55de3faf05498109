// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint derives pseudo-identities for voters.

# Fingerprints

A fingerprint is a SHA-256 hex digest over client address, User-Agent,
poll ID, and an optional client token:

	fp := fingerprint.Generate(ip, userAgent, pollID, token)

Missing components are replaced with sentinels ("unknown", "no-token")
so the digest stays deterministic. Because the poll ID is part of the
input, the same client gets distinct fingerprints on distinct polls.

# Scope

Fingerprints exist for duplicate-vote detection only. They are
best-effort anti-abuse, not authentication: a voter who switches
networks or clears cookies can vote again. This is an accepted
limitation.
*/
package fingerprint
