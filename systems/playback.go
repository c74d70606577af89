package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const delayTweenSeconds = 0.5

// DelaySmoother eases runtime playback-delay changes over half a second so a
// settings tweak slides positions instead of popping them. The smoothed value
// is pushed into the entity buffer once per frame.
type DelaySmoother struct {
	current float64
	tween   *gween.Tween
}

// NewDelaySmoother starts at the configured delay with no tween pending.
func NewDelaySmoother(initialMs float64) *DelaySmoother {
	return &DelaySmoother{current: initialMs}
}

// SetTarget begins easing toward a new playback delay.
func (d *DelaySmoother) SetTarget(ms float64) {
	if ms == d.current {
		d.tween = nil
		return
	}
	d.tween = gween.New(float32(d.current), float32(ms), delayTweenSeconds, ease.OutQuad)
}

// Update advances the tween by dt seconds and returns the current delay.
func (d *DelaySmoother) Update(dt float64) float64 {
	if d.tween != nil {
		v, done := d.tween.Update(float32(dt))
		d.current = float64(v)
		if done {
			d.tween = nil
		}
	}
	return d.current
}

// Current returns the smoothed delay without advancing it.
func (d *DelaySmoother) Current() float64 {
	return d.current
}
