package interp

import "github.com/solheim/driftwars-client/shared/netconfig"

// Source selects which buffer backs resolver queries.
type Source int

const (
	// SourceSnapshots interpolates between bracketing whole-world snapshots.
	SourceSnapshots Source = iota
	// SourceEntityBuffer interpolates each entity's own history on the
	// server time axis, falling back to the live store when there is none.
	SourceEntityBuffer
)

// ResolverConfig holds the runtime-mutable resolver tunables.
type ResolverConfig struct {
	// ExtrapolationCeilingMs is the maximum gap past the last known data
	// after which a position is frozen instead of reported as a live
	// extrapolation.
	ExtrapolationCeilingMs float64
	Source                 Source
}

// Result is the single shape every degenerate case resolves into.
// Extrapolated means the answer is past the newest data we hold;
// Frozen means it is so far past the extrapolation ceiling that the
// position is simply the last known one, held.
type Result struct {
	X, Y, Z      float64
	Extrapolated bool
	Frozen       bool
}

// Resolver is the one call the renderer makes per visible entity per frame.
// It hides which buffer backs the answer and never fails: an entity that
// cannot be located in any history or the live store is reported as
// not-found, everything else resolves to a position plus flags.
type Resolver struct {
	cfg       ResolverConfig
	entities  *EntityBuffer
	snapshots *SnapshotBuffer
	live      LiveSource
}

// NewResolver wires the resolver to both buffers and the canonical store.
func NewResolver(entities *EntityBuffer, snapshots *SnapshotBuffer, live LiveSource, cfg ResolverConfig) *Resolver {
	return &Resolver{
		cfg:       cfg,
		entities:  entities,
		snapshots: snapshots,
		live:      live,
	}
}

// Config returns the current resolver configuration.
func (r *Resolver) Config() ResolverConfig {
	return r.cfg
}

// SetConfig replaces the resolver configuration at runtime.
func (r *Resolver) SetConfig(cfg ResolverConfig) {
	r.cfg = cfg
}

// Query resolves the entity's position at renderTime (client clock, already
// lagged by the playback delay). The second return is false when the entity
// is unknown to every history and the live store; the renderer should treat
// it as currently non-existent, not as an error.
func (r *Resolver) Query(id string, kind netconfig.KindID, renderTime float64) (Result, bool) {
	if r.cfg.Source == SourceEntityBuffer {
		return r.queryEntityBuffer(id, kind, renderTime)
	}
	return r.querySnapshots(id, kind, renderTime)
}

// QueryAll is the batch form over every currently-known entity of a kind.
func (r *Resolver) QueryAll(kind netconfig.KindID, renderTime float64) map[string]Result {
	out := make(map[string]Result)
	r.live.EachOfKind(kind, func(id string, _ EntityState) {
		if res, ok := r.Query(id, kind, renderTime); ok {
			out[id] = res
		}
	})
	return out
}

func (r *Resolver) querySnapshots(id string, kind netconfig.KindID, renderTime float64) (Result, bool) {
	// Too little history for a bracket: hold on whatever single point exists.
	if r.snapshots.Len() < 2 {
		if latest := r.snapshots.Latest(); latest != nil {
			if st, ok := latest.Entities[id]; ok && kindMatches(st.Kind, kind) {
				return r.resolveGap(st, renderTime-latest.CaptureClientTime), true
			}
		}
		return r.liveResult(id, kind)
	}

	oldest := r.snapshots.Oldest()
	latest := r.snapshots.Latest()

	// Outside the buffered span: the latest snapshot is the best we have.
	if renderTime < oldest.CaptureClientTime || renderTime > latest.CaptureClientTime {
		if st, ok := latest.Entities[id]; ok && kindMatches(st.Kind, kind) {
			return Result{X: st.X, Y: st.Y, Z: st.Z, Extrapolated: true}, true
		}
		return r.liveResult(id, kind)
	}

	before, after, ok := r.snapshots.Bracketing(renderTime)
	if !ok {
		return r.liveResult(id, kind)
	}

	beforeState, inBefore := before.Entities[id]
	afterState, inAfter := after.Entities[id]

	switch {
	case inBefore && inAfter:
		if !kindMatches(beforeState.Kind, kind) {
			return Result{}, false
		}
		span := after.CaptureClientTime - before.CaptureClientTime
		if span <= 0 {
			// Degenerate bracket, guard the division.
			return Result{X: beforeState.X, Y: beforeState.Y, Z: beforeState.Z}, true
		}
		alpha := (renderTime - before.CaptureClientTime) / span
		return Result{
			X: beforeState.X + (afterState.X-beforeState.X)*alpha,
			Y: beforeState.Y + (afterState.Y-beforeState.Y)*alpha,
			Z: beforeState.Z + (afterState.Z-beforeState.Z)*alpha,
		}, true
	case inBefore:
		// Entity is about to be removed; its last position, unmodified.
		if !kindMatches(beforeState.Kind, kind) {
			return Result{}, false
		}
		return Result{X: beforeState.X, Y: beforeState.Y, Z: beforeState.Z}, true
	case inAfter:
		// Entity was just created; its first position, unmodified.
		if !kindMatches(afterState.Kind, kind) {
			return Result{}, false
		}
		return Result{X: afterState.X, Y: afterState.Y, Z: afterState.Z}, true
	default:
		return Result{}, false
	}
}

func (r *Resolver) queryEntityBuffer(id string, kind netconfig.KindID, renderTime float64) (Result, bool) {
	sample, res := r.entities.interpolate(id, renderTime)
	switch res {
	case sampleInterpolated, sampleUnderrun:
		return Result{X: sample.X, Y: sample.Y, Z: sample.Z}, true
	case sampleHeld:
		offset, _ := r.entities.Offset(id)
		gap := (renderTime - offset) - sample.ServerTime
		return r.resolveGap(EntityState{X: sample.X, Y: sample.Y, Z: sample.Z}, gap), true
	default:
		return r.liveResult(id, kind)
	}
}

// resolveGap applies the extrapolation ceiling to a held position. No
// velocity-based dead reckoning: past the ceiling the position is frozen,
// under it the position is the same held point flagged as extrapolated.
func (r *Resolver) resolveGap(st EntityState, gap float64) Result {
	res := Result{X: st.X, Y: st.Y, Z: st.Z}
	if gap > r.cfg.ExtrapolationCeilingMs {
		res.Frozen = true
	} else if gap > 0 {
		res.Extrapolated = true
	}
	return res
}

func (r *Resolver) liveResult(id string, kind netconfig.KindID) (Result, bool) {
	st, ok := r.live.LiveState(id)
	if !ok || !kindMatches(st.Kind, kind) {
		return Result{}, false
	}
	return Result{X: st.X, Y: st.Y, Z: st.Z}, true
}

func kindMatches(have, want netconfig.KindID) bool {
	return want == netconfig.KindUnknown || have == want
}

// ResolverDiagnostics is a point-in-time view for observability overlays.
type ResolverDiagnostics struct {
	EntityCount      int
	AverageOccupancy float64
	UnderrunCount    uint64
	PlaybackDelayMs  float64
	SnapshotCount    int
}

// Diagnostics reports buffer health for the HUD overlay.
func (r *Resolver) Diagnostics() ResolverDiagnostics {
	return ResolverDiagnostics{
		EntityCount:      r.entities.EntityCount(),
		AverageOccupancy: r.entities.AverageOccupancy(),
		UnderrunCount:    r.entities.UnderrunCount(),
		PlaybackDelayMs:  r.entities.PlaybackDelayMs(),
		SnapshotCount:    r.snapshots.Len(),
	}
}
