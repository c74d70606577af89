package systems

import "testing"

func TestDelaySmootherStartsAtInitial(t *testing.T) {
	d := NewDelaySmoother(100)
	if d.Current() != 100 {
		t.Fatalf("expected initial delay 100, got %v", d.Current())
	}
	if got := d.Update(1); got != 100 {
		t.Fatalf("expected no drift without a target, got %v", got)
	}
}

func TestDelaySmootherEasesTowardTarget(t *testing.T) {
	d := NewDelaySmoother(100)
	d.SetTarget(200)

	mid := d.Update(0.25)
	if mid <= 100 || mid >= 200 {
		t.Fatalf("expected an intermediate value mid-tween, got %v", mid)
	}

	// Well past the tween duration: settled on the target.
	final := d.Update(5)
	if final != 200 {
		t.Fatalf("expected delay settled at 200, got %v", final)
	}
	if d.Update(1) != 200 {
		t.Fatalf("expected delay stable after settling, got %v", d.Current())
	}
}

func TestDelaySmootherRetarget(t *testing.T) {
	d := NewDelaySmoother(100)
	d.SetTarget(200)
	d.Update(0.1)

	// Retarget mid-flight; must ease from wherever it currently is.
	d.SetTarget(50)
	final := d.Update(5)
	if final != 50 {
		t.Fatalf("expected delay settled at 50, got %v", final)
	}
}

func TestDelaySmootherSameTargetIsNoop(t *testing.T) {
	d := NewDelaySmoother(150)
	d.SetTarget(150)
	if d.tween != nil {
		t.Fatalf("expected no tween for an unchanged target")
	}
}
