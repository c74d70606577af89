package interp

import "sort"

// SnapshotBuffer retains the last N whole-world snapshots so one consistent
// time slice can be taken across all entities at once. Arrival order is not
// assumed: the buffer is re-sorted by capture time after every insertion.
//
// The buffer moves one way through empty -> partially filled -> full; once
// full, each insertion overwrites the slot under an internal ring cursor.
// After a re-sort the cursor is decoupled from chronology, so the overwritten
// slot is not necessarily the chronologically oldest one.
type SnapshotBuffer struct {
	capacity int
	slots    []*WorldSnapshot
	cursor   int
}

// NewSnapshotBuffer creates a buffer holding up to capacity snapshots.
func NewSnapshotBuffer(capacity int) *SnapshotBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &SnapshotBuffer{capacity: capacity}
}

// Add inserts a snapshot, overwriting the cursor slot when full, then
// re-sorts by CaptureClientTime so queries can assume sorted order.
func (b *SnapshotBuffer) Add(snap *WorldSnapshot) {
	if snap == nil {
		return
	}
	if len(b.slots) < b.capacity {
		b.slots = append(b.slots, snap)
	} else {
		b.slots[b.cursor] = snap
		b.cursor = (b.cursor + 1) % b.capacity
	}
	sort.SliceStable(b.slots, func(i, j int) bool {
		return b.slots[i].CaptureClientTime < b.slots[j].CaptureClientTime
	})
}

// Bracketing returns the snapshots straddling renderTime: before is the one
// with the greatest capture time <= renderTime, after the smallest >=
// renderTime. Returns ok=false with fewer than 2 snapshots or when renderTime
// lies outside the buffered span.
func (b *SnapshotBuffer) Bracketing(renderTime float64) (before, after *WorldSnapshot, ok bool) {
	if len(b.slots) < 2 {
		return nil, nil, false
	}
	for _, snap := range b.slots {
		if snap.CaptureClientTime <= renderTime {
			before = snap
		}
		if snap.CaptureClientTime >= renderTime && after == nil {
			after = snap
		}
	}
	if before == nil || after == nil {
		return nil, nil, false
	}
	return before, after, true
}

// Latest returns the snapshot with the greatest capture time, or nil.
func (b *SnapshotBuffer) Latest() *WorldSnapshot {
	var latest *WorldSnapshot
	for _, snap := range b.slots {
		if latest == nil || snap.CaptureClientTime > latest.CaptureClientTime {
			latest = snap
		}
	}
	return latest
}

// Oldest returns the snapshot with the smallest capture time, or nil.
func (b *SnapshotBuffer) Oldest() *WorldSnapshot {
	var oldest *WorldSnapshot
	for _, snap := range b.slots {
		if oldest == nil || snap.CaptureClientTime < oldest.CaptureClientTime {
			oldest = snap
		}
	}
	return oldest
}

// SnapshotsInRange returns every snapshot with start <= capture time <= end.
func (b *SnapshotBuffer) SnapshotsInRange(start, end float64) []*WorldSnapshot {
	var out []*WorldSnapshot
	for _, snap := range b.slots {
		if snap.CaptureClientTime >= start && snap.CaptureClientTime <= end {
			out = append(out, snap)
		}
	}
	return out
}

// Len returns how many snapshots are held.
func (b *SnapshotBuffer) Len() int {
	return len(b.slots)
}

// Capacity returns the configured slot count.
func (b *SnapshotBuffer) Capacity() int {
	return b.capacity
}

// SetCapacity adjusts capacity at runtime. Shrinking keeps the newest
// snapshots and resets the ring cursor.
func (b *SnapshotBuffer) SetCapacity(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	b.capacity = capacity
	if excess := len(b.slots) - capacity; excess > 0 {
		b.slots = append([]*WorldSnapshot(nil), b.slots[excess:]...)
	}
	b.cursor = 0
}

// Clear drops every snapshot and resets the ring cursor.
func (b *SnapshotBuffer) Clear() {
	b.slots = nil
	b.cursor = 0
}
