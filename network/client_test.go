package network

import (
	"testing"

	"github.com/solheim/driftwars-client/shared/messages"
)

func TestDrainEventsPreservesArrivalOrder(t *testing.T) {
	c := NewClient()

	c.enqueue(messages.SpawnEvent{Handle: 1, ID: "ship-a"})
	c.enqueue(messages.MoveEvent{Handle: 1, X: 10})
	c.enqueue(messages.MoveEvent{Handle: 1, X: 20})
	c.enqueue(messages.DespawnEvent{Handle: 1})

	events := c.DrainEvents()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if _, ok := events[0].(messages.SpawnEvent); !ok {
		t.Fatalf("expected spawn first, got %T", events[0])
	}
	if mv, ok := events[1].(messages.MoveEvent); !ok || mv.X != 10 {
		t.Fatalf("expected first move second, got %#v", events[1])
	}
	if mv, ok := events[2].(messages.MoveEvent); !ok || mv.X != 20 {
		t.Fatalf("expected second move third, got %#v", events[2])
	}
	if _, ok := events[3].(messages.DespawnEvent); !ok {
		t.Fatalf("expected despawn last, got %T", events[3])
	}

	if again := c.DrainEvents(); len(again) != 0 {
		t.Fatalf("expected drain to empty the queue, got %d leftover", len(again))
	}
}

func TestEnqueueDropsWhenQueueIsFull(t *testing.T) {
	c := NewClient()

	for i := 0; i < eventQueueSize+3; i++ {
		c.enqueue(messages.EnergyEvent{Handle: 1, Energy: float64(i)})
	}

	if c.DroppedEvents() != 3 {
		t.Fatalf("expected 3 dropped events, got %d", c.DroppedEvents())
	}
	if got := len(c.DrainEvents()); got != eventQueueSize {
		t.Fatalf("expected a full queue drained, got %d", got)
	}
}

func TestClientStateString(t *testing.T) {
	cases := map[ClientState]string{
		StateDisconnected: "disconnected",
		StateConnecting:   "connecting",
		StateConnected:    "connected",
		StateJoinedGame:   "joined",
		StateError:        "error",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("state %d: expected %q, got %q", state, want, got)
		}
	}
}
