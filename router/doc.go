// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method-and-pattern syntax on the standard ServeMux:

	POST /polls
	GET  /polls/{id}
	POST /polls/{id}/vote
	GET  /polls/{id}/results
	GET  /polls/{id}/sse
	GET  /health
	GET  /metrics

API handlers are wrapped in middleware.WithLogging; /health and
/metrics are left bare. CORS is applied around the whole mux in main.
*/
package router
