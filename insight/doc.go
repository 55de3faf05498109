// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package insight produces short natural-language annotations for poll
results.

# Rules

ForResults applies a fixed rule set to the per-option counts, in order:

  - fewer than 20 total votes: no insight
  - leader holds >= 60% of votes: "Clear favorite emerging: <option>"
  - leader's margin over the runner-up >= 10% of votes: comfortable lead
  - margin <= 5% of votes: "It's a close race!"

Everything else yields no insight. The function is pure; callers invoke
it on every snapshot rather than caching its output.
*/
package insight
