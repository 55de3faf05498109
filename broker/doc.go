// Copyright (c) 2026 QuickPoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package broker implements the in-process pub/sub fanout behind live
result streams.

# Model

Topics are poll IDs. A topic has no state besides its currently
registered subscriber channels; publishing to a topic with no
subscribers is a no-op, and nothing is buffered for future subscribers.

	b := broker.New()
	ch := b.Subscribe(pollID)
	defer b.Unsubscribe(pollID, ch)

	for msg := range ch {
		// forward msg
	}

# Delivery guarantees

Each subscriber receives messages in publish order (FIFO per channel).
No ordering is guaranteed across subscribers, and a Subscribe that races
a Publish on the same topic may or may not see that message - callers
close the gap by fetching a fresh snapshot right after subscribing.

Sends are non-blocking: a subscriber whose buffer is full loses the
message rather than stalling delivery to other subscribers. Live result
snapshots are self-contained, so a dropped intermediate snapshot is
superseded by the next one.

# Lifecycle

The broker is constructed once at startup and shared. Unsubscribe never
closes the subscriber channel; only Shutdown does, which also empties
the registry and turns further operations into no-ops.
*/
package broker
