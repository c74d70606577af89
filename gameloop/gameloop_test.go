package gameloop

import "testing"

func TestFirstAdvanceOnlyPrimes(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })

	alpha := l.Advance(1000)
	if steps != 0 {
		t.Fatalf("expected no fixed steps on the priming call, got %d", steps)
	}
	if alpha != 0 {
		t.Fatalf("expected alpha 0 on the priming call, got %v", alpha)
	}
}

func TestAdvanceRunsFixedSteps(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })

	l.Advance(1000)
	alpha := l.Advance(1035)

	if steps != 3 {
		t.Fatalf("expected 3 fixed steps for 35ms, got %d", steps)
	}
	if alpha != 0.5 {
		t.Fatalf("expected alpha 0.5 from the 5ms remainder, got %v", alpha)
	}
}

func TestRemainderCarriesAcrossFrames(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })

	l.Advance(1000)
	l.Advance(1006) // 6ms: no step yet
	if steps != 0 {
		t.Fatalf("expected no step after 6ms, got %d", steps)
	}
	l.Advance(1012) // 12ms total: one step, 2ms left
	if steps != 1 {
		t.Fatalf("expected 1 step after 12ms, got %d", steps)
	}
}

func TestStepCeilingDropsRemainder(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })
	l.MaxStepsPerFrame = 4

	l.Advance(1000)
	alpha := l.Advance(2000) // a full second queued

	if steps != 4 {
		t.Fatalf("expected the ceiling to cap at 4 steps, got %d", steps)
	}
	if alpha != 0 {
		t.Fatalf("expected remainder discarded (alpha 0), got %v", alpha)
	}
	if l.DropWarnings() != 1 {
		t.Fatalf("expected 1 drop warning, got %d", l.DropWarnings())
	}
	if l.DroppedMs() < 900 {
		t.Fatalf("expected most of the queued second dropped, got %.1fms", l.DroppedMs())
	}

	// The next normal frame must behave as if nothing happened.
	l.Advance(2010)
	if steps != 5 {
		t.Fatalf("expected clean recovery after the drop, got %d steps", steps)
	}
}

func TestBackwardsClockIsIgnored(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })

	l.Advance(1000)
	l.Advance(900) // clock went backwards
	if steps != 0 {
		t.Fatalf("expected no steps on a backwards clock, got %d", steps)
	}
	l.Advance(910)
	if steps != 1 {
		t.Fatalf("expected normal stepping to resume, got %d", steps)
	}
}

func TestResetForgetsAccumulatedTime(t *testing.T) {
	steps := 0
	l := New(10, func() { steps++ })

	l.Advance(1000)
	l.Advance(1009)
	l.Reset()

	l.Advance(5000) // priming call after reset
	l.Advance(5010)
	if steps != 1 {
		t.Fatalf("expected exactly 1 step after reset, got %d", steps)
	}
}
