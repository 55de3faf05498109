// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics holds the Prometheus collectors for the QuickPoll API.

Collectors are registered with the default registry at package init and
exposed via promhttp on GET /metrics (see the router package).

  - quickpoll_votes_accepted_total
  - quickpoll_votes_duplicate_total
  - quickpoll_stream_subscribers
  - quickpoll_request_duration_seconds
*/
package metrics
