package interp

// Clock-offset EMA weight. Each push blends 10% of the newly observed
// client-minus-server delta into the running estimate.
const offsetBlend = 0.1

// sampleResolution classifies how an interpolation request was answered.
type sampleResolution int

const (
	sampleMiss         sampleResolution = iota // no history at all
	sampleInterpolated                         // proper two-point interpolation
	sampleUnderrun                             // target precedes all history; oldest returned
	sampleHeld                                 // target past newest sample; newest returned
)

// EntityBuffer keeps one bounded sample history per entity and a smoothed
// client-minus-server clock offset per entity. Samples are assumed to arrive
// in non-decreasing ServerTime order (the tick stream is FIFO per connection);
// the buffer trims but never re-sorts.
type EntityBuffer struct {
	capacity        int
	playbackDelayMs float64

	samples   map[string][]Sample
	offsets   map[string]float64
	underruns uint64
}

// NewEntityBuffer creates a buffer holding up to capacity samples per entity.
// playbackDelayMs is how far render time trails real time; capacity must
// exceed (delay + expected jitter) / send interval or underruns get frequent.
func NewEntityBuffer(capacity int, playbackDelayMs float64) *EntityBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &EntityBuffer{
		capacity:        capacity,
		playbackDelayMs: playbackDelayMs,
		samples:         make(map[string][]Sample),
		offsets:         make(map[string]float64),
	}
}

// Push appends a sample to the entity's history, updates the clock offset,
// and evicts the single oldest sample if the history is at capacity.
func (b *EntityBuffer) Push(id string, s Sample) {
	delta := s.ClientTime - s.ServerTime
	if prev, ok := b.offsets[id]; ok {
		b.offsets[id] = prev*(1-offsetBlend) + delta*offsetBlend
	} else {
		// First sample seeds the offset directly, no blending.
		b.offsets[id] = delta
	}

	buf := b.samples[id]
	if len(buf) >= b.capacity {
		n := copy(buf, buf[1:])
		buf = buf[:n]
	}
	b.samples[id] = append(buf, s)
}

// Interpolate answers a point-in-time query for the entity on the server's
// time axis. playbackTime is on the client's clock; the entity's tracked
// offset translates it to a target server time. The second return is false
// only when the entity has no history at all. Degraded cases (underrun,
// buffer running dry) return the nearest held sample instead of failing —
// this runs on the draw path, it must always produce a position.
func (b *EntityBuffer) Interpolate(id string, playbackTime float64) (Sample, bool) {
	s, res := b.interpolate(id, playbackTime)
	return s, res != sampleMiss
}

func (b *EntityBuffer) interpolate(id string, playbackTime float64) (Sample, sampleResolution) {
	buf := b.samples[id]
	if len(buf) == 0 {
		return Sample{}, sampleMiss
	}

	target := playbackTime - b.offsets[id]

	var before, after *Sample
	for i := range buf {
		if buf[i].ServerTime <= target {
			before = &buf[i]
		} else {
			after = &buf[i]
			break
		}
	}

	if before == nil {
		// Requested time precedes everything we hold.
		b.underruns++
		return buf[0], sampleUnderrun
	}
	if after == nil {
		// Buffer is running dry relative to playback; hold last known.
		return *before, sampleHeld
	}

	span := after.ServerTime - before.ServerTime
	if span <= 0 {
		return *before, sampleInterpolated
	}

	alpha := (target - before.ServerTime) / span
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return lerpSample(*before, *after, alpha), sampleInterpolated
}

// Offset returns the entity's current clock-offset estimate in milliseconds.
func (b *EntityBuffer) Offset(id string) (float64, bool) {
	off, ok := b.offsets[id]
	return off, ok
}

// Len returns how many samples are held for the entity.
func (b *EntityBuffer) Len(id string) int {
	return len(b.samples[id])
}

// EntityCount returns how many entities currently have history.
func (b *EntityBuffer) EntityCount() int {
	return len(b.samples)
}

// AverageOccupancy reports mean buffer fill across tracked entities, 0..1.
func (b *EntityBuffer) AverageOccupancy() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	total := 0
	for _, buf := range b.samples {
		total += len(buf)
	}
	return float64(total) / float64(len(b.samples)*b.capacity)
}

// UnderrunCount returns how many queries have preceded all held data.
func (b *EntityBuffer) UnderrunCount() uint64 {
	return b.underruns
}

// Capacity returns the per-entity sample capacity.
func (b *EntityBuffer) Capacity() int {
	return b.capacity
}

// SetCapacity adjusts the per-entity capacity at runtime, trimming the oldest
// samples of any history that now exceeds it.
func (b *EntityBuffer) SetCapacity(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	b.capacity = capacity
	for id, buf := range b.samples {
		if excess := len(buf) - capacity; excess > 0 {
			n := copy(buf, buf[excess:])
			b.samples[id] = buf[:n]
		}
	}
}

// PlaybackDelayMs returns the configured playback delay.
func (b *EntityBuffer) PlaybackDelayMs() float64 {
	return b.playbackDelayMs
}

// SetPlaybackDelayMs adjusts the playback delay at runtime.
func (b *EntityBuffer) SetPlaybackDelayMs(ms float64) {
	b.playbackDelayMs = ms
}

// PlaybackTime converts a wall-clock client time to the lagged playback time.
func (b *EntityBuffer) PlaybackTime(clientNow float64) float64 {
	return clientNow - b.playbackDelayMs
}

// Remove drops one entity's history and its clock-offset entry.
func (b *EntityBuffer) Remove(id string) {
	delete(b.samples, id)
	delete(b.offsets, id)
}

// Clear drops all history and all clock-offset entries.
func (b *EntityBuffer) Clear() {
	b.samples = make(map[string][]Sample)
	b.offsets = make(map[string]float64)
	b.underruns = 0
}
