// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package broker

import (
	"log/slog"
	"sync"
)

// SubscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this many messages behind starts losing messages instead of
// stalling delivery to everyone else.
const SubscriberBuffer = 16

// Broker fans result messages out to live subscribers, grouped by topic
// (the poll ID). It is process-scoped: construct one at startup, share it
// across handlers, and call Shutdown on exit.
type Broker struct {
	mu     sync.Mutex
	topics map[string][]chan []byte
	closed bool
}

// New creates an empty broker.
func New() *Broker {
	return &Broker{
		topics: make(map[string][]chan []byte),
	}
}

// Subscribe registers a new channel under the topic and returns it. The
// caller is the sole receiver and must call Unsubscribe when done. After
// Shutdown, the returned channel is already closed.
func (b *Broker) Subscribe(topic string) chan []byte {
	ch := make(chan []byte, SubscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch
	}

	b.topics[topic] = append(b.topics[topic], ch)
	return ch
}

// Unsubscribe removes exactly ch from the topic's registration set. The
// topic entry is dropped once its set empties, so idle topics do not
// accumulate over the server's lifetime. Safe to call with a channel
// that was never registered or was already removed.
func (b *Broker) Unsubscribe(topic string, ch chan []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[topic]
	for i, s := range subs {
		if s == ch {
			b.topics[topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.topics[topic]) == 0 {
		delete(b.topics, topic)
	}
}

// Publish delivers message to every current subscriber of the topic.
// Each subscriber receives messages in publish order; a subscriber whose
// buffer is full has this message dropped. No subscribers is a no-op.
//
// Sends happen under the registry lock: they are non-blocking, and
// holding the lock means a concurrent Shutdown cannot close a channel
// mid-send.
func (b *Broker) Publish(topic string, message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, ch := range b.topics[topic] {
		select {
		case ch <- message:
		default:
			slog.Warn("broker: dropping message for slow subscriber", "topic", topic)
		}
	}
}

// Shutdown closes every subscriber channel and drops all registrations.
// Subsequent Subscribe calls return closed channels and Publish becomes
// a no-op. Idempotent.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for topic, subs := range b.topics {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.topics, topic)
	}
}

// Subscribers returns the number of channels currently registered under
// the topic. Used for introspection and tests.
func (b *Broker) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic])
}
