// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VotesAccepted counts votes that were admitted and persisted.
	VotesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quickpoll_votes_accepted_total",
		Help: "Total votes accepted and recorded.",
	})

	// VotesDuplicate counts vote attempts rejected as duplicates,
	// whether caught by the pre-check or by the storage constraint.
	VotesDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quickpoll_votes_duplicate_total",
		Help: "Total vote attempts matching an existing fingerprint.",
	})

	// StreamSubscribers tracks currently open live result streams.
	StreamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quickpoll_stream_subscribers",
		Help: "Number of live SSE result streams currently open.",
	})

	// RequestDuration records HTTP request latency by method and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickpoll_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)
