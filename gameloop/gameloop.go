// Package gameloop multiplexes two cadences inside the host's single
// per-frame callback: a fixed-step cadence for intent/input logic and a
// variable-step render cadence with an interpolation fraction.
package gameloop

import "log"

// DefaultMaxStepsPerFrame caps fixed-step catch-up after a long frame. Once
// hit, remaining accumulated time is discarded instead of processed, trading
// bounded time loss for never spiraling.
const DefaultMaxStepsPerFrame = 5

// Loop is a time accumulator driving a fixed-step callback at a configured
// cadence regardless of frame rate. Advance never suspends; each call runs at
// most MaxStepsPerFrame fixed steps and returns the interpolation fraction
// for the render cadence.
type Loop struct {
	StepMs           float64
	MaxStepsPerFrame int
	Fixed            func()

	accumulator float64
	lastMs      float64
	started     bool

	droppedMs    float64
	dropWarnings uint64
}

// New creates a loop running Fixed every stepMs of real time.
func New(stepMs float64, fixed func()) *Loop {
	return &Loop{
		StepMs:           stepMs,
		MaxStepsPerFrame: DefaultMaxStepsPerFrame,
		Fixed:            fixed,
	}
}

// Advance consumes the time since the previous call, runs the fixed steps
// that fit, and returns alpha in [0,1): how far into the next fixed step the
// frame lands, for render-side interpolation.
func (l *Loop) Advance(nowMs float64) float64 {
	if !l.started {
		l.started = true
		l.lastMs = nowMs
		return 0
	}

	frame := nowMs - l.lastMs
	l.lastMs = nowMs
	if frame < 0 {
		frame = 0
	}
	l.accumulator += frame

	steps := 0
	for l.accumulator >= l.StepMs {
		if steps >= l.MaxStepsPerFrame {
			// Runaway accumulator: drop the remainder, keep rendering.
			l.droppedMs += l.accumulator
			l.dropWarnings++
			log.Printf("[loop] fixed-step ceiling hit, dropping %.1fms of accumulated time", l.accumulator)
			l.accumulator = 0
			break
		}
		if l.Fixed != nil {
			l.Fixed()
		}
		l.accumulator -= l.StepMs
		steps++
	}

	return l.accumulator / l.StepMs
}

// DroppedMs reports total accumulated time discarded at the step ceiling.
func (l *Loop) DroppedMs() float64 {
	return l.droppedMs
}

// DropWarnings reports how many frames hit the step ceiling.
func (l *Loop) DropWarnings() uint64 {
	return l.dropWarnings
}

// Reset clears the accumulator and timing state, e.g. after a scene change.
func (l *Loop) Reset() {
	l.accumulator = 0
	l.started = false
}
