// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quickpoll/quickpoll/broker"
	"github.com/quickpoll/quickpoll/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	mux := NewRouter(db, b)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	mux := NewRouter(db, b)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "QuickPoll API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	mux := NewRouter(db, b)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected Prometheus exposition output")
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	mux := NewRouter(db, b)

	// Test that routes respond (handler is invoked)
	// Note: Some routes return 404 when data doesn't exist, which is valid handler behavior
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/"},
		{"POST", "/polls"},
		{"GET", "/polls/test-id"},
		{"POST", "/polls/test-id/vote"},
		{"GET", "/polls/test-id/results"},
		{"GET", "/polls/test-id/sse"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	mux := NewRouter(db, b)

	// Unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                // Only GET is defined
		{"DELETE", "/polls/test-id/vote"},  // Only POST is defined
		{"POST", "/polls/test-id/results"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()

	pollID := testutil.CreateTestPoll(t, db, "Routed poll")
	testutil.AddTestOption(t, db, pollID, "A", 0)
	testutil.AddTestOption(t, db, pollID, "B", 1)

	mux := NewRouter(db, b)

	t.Run("poll ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+pollID, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for existing poll, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown poll ID reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/nonexistent", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// Route matched, handler decided 404
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 from handler, got %d", w.Code)
		}
	})
}
