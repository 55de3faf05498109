// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/quickpoll/quickpoll/broker"
	"github.com/quickpoll/quickpoll/models"
	"github.com/quickpoll/quickpoll/testutil"
)

// TestConcurrentDuplicateVotes verifies that when many requests with
// the same fingerprint race on one poll, exactly one vote is recorded
// and every caller gets a coherent response
func TestConcurrentDuplicateVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	handler := NewVotingHandler(db, b)

	pollID := testutil.CreateTestPoll(t, db, "Race poll")
	optionA := testutil.AddTestOption(t, db, pollID, "Go", 0)

	numRequests := 10
	var recordedCount atomic.Int32
	var alreadyVotedCount atomic.Int32
	var wg sync.WaitGroup

	// Identical headers on every request means identical fingerprints
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := voteRequest(pollID, models.VoteRequest{OptionID: optionA})
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
				return
			}

			var resp models.VoteResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode response: %v", err)
				return
			}

			switch resp.Message {
			case "Vote recorded":
				recordedCount.Add(1)
			case "Already voted":
				alreadyVotedCount.Add(1)
			default:
				t.Errorf("Unexpected message: %s", resp.Message)
			}
		}()
	}

	wg.Wait()

	// Exactly one request wins the insert
	if recordedCount.Load() != 1 {
		t.Errorf("Expected exactly 1 recorded vote, got %d", recordedCount.Load())
	}
	if int(alreadyVotedCount.Load()) != numRequests-1 {
		t.Errorf("Expected %d already-voted responses, got %d", numRequests-1, alreadyVotedCount.Load())
	}

	// The database holds a single row for this fingerprint
	if got := testutil.CountVotes(t, db, pollID); got != 1 {
		t.Errorf("Expected 1 vote in database, got %d", got)
	}
}

// TestConcurrentDistinctVoters verifies that simultaneous votes from
// different fingerprints all land
func TestConcurrentDistinctVoters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	handler := NewVotingHandler(db, b)

	pollID := testutil.CreateTestPoll(t, db, "Busy poll")
	optionA := testutil.AddTestOption(t, db, pollID, "Go", 0)
	optionB := testutil.AddTestOption(t, db, pollID, "Rust", 1)

	numVoters := 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			optionID := optionA
			if idx%2 == 1 {
				optionID = optionB
			}

			req := voteRequest(pollID, models.VoteRequest{OptionID: optionID})
			// Distinct User-Agent per voter gives a distinct fingerprint
			req.Header.Set("User-Agent", "voter-"+strconv.Itoa(idx))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Voter %d got status %d: %s", idx, w.Code, w.Body.String())
				return
			}

			var resp models.VoteResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Voter %d: failed to decode response: %v", idx, err)
				return
			}
			if resp.Message == "Vote recorded" {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d recorded votes, got %d", numVoters, successCount.Load())
	}
	if got := testutil.CountVotes(t, db, pollID); got != numVoters {
		t.Errorf("Expected %d votes in database, got %d", numVoters, got)
	}

	// Fingerprints are all distinct
	var unique int
	err := db.QueryRow("SELECT COUNT(DISTINCT fingerprint) FROM vote WHERE poll_id = $1", pollID).Scan(&unique)
	if err != nil {
		t.Fatalf("Failed to count fingerprints: %v", err)
	}
	if unique != numVoters {
		t.Errorf("Expected %d distinct fingerprints, got %d", numVoters, unique)
	}
}

// TestConcurrentVotesAndStreams exercises voting while streams are
// attached to the same poll; updates flow and nothing deadlocks
func TestConcurrentVotesAndStreams(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	b := broker.New()
	defer b.Shutdown()
	votingHandler := NewVotingHandler(db, b)

	pollID := testutil.CreateTestPoll(t, db, "Streamed poll")
	optionA := testutil.AddTestOption(t, db, pollID, "Go", 0)
	testutil.AddTestOption(t, db, pollID, "Rust", 1)

	// Raw broker subscribers stand in for attached streams
	numSubscribers := 3
	channels := make([]chan []byte, numSubscribers)
	for i := range channels {
		channels[i] = b.Subscribe(pollID)
		defer b.Unsubscribe(pollID, channels[i])
	}

	numVoters := 5
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := voteRequest(pollID, models.VoteRequest{OptionID: optionA})
			req.Header.Set("User-Agent", "stream-voter-"+strconv.Itoa(idx))
			w := httptest.NewRecorder()
			votingHandler.Vote(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Voter %d got status %d", idx, w.Code)
			}
		}(i)
	}
	wg.Wait()

	if got := testutil.CountVotes(t, db, pollID); got != numVoters {
		t.Errorf("Expected %d votes, got %d", numVoters, got)
	}

	// Every subscriber saw every accepted vote's snapshot
	for i, ch := range channels {
		if len(ch) != numVoters {
			t.Errorf("Subscriber %d: expected %d snapshots, got %d", i, numVoters, len(ch))
			continue
		}

		// The snapshots arrive in publish order but their contents
		// interleave; the last one must reflect all committed votes.
		var last models.ResultsSnapshot
		for j := 0; j < numVoters; j++ {
			if err := json.Unmarshal(<-ch, &last); err != nil {
				t.Fatalf("Subscriber %d: failed to decode snapshot: %v", i, err)
			}
		}
		if last.TotalVotes > numVoters {
			t.Errorf("Subscriber %d: snapshot reports %d votes, only %d cast", i, last.TotalVotes, numVoters)
		}
	}
}
