// Package interp is the temporal buffering and interpolation engine of the
// driftwars client. It absorbs network jitter and clock skew between the
// server's fixed-rate tick stream and the variable-rate render loop, answering
// "where is entity E at render time T" for everything on screen.
//
// All timestamps are float64 milliseconds. ServerTime is on the server's
// clock, ClientTime on the local one; a per-entity smoothed offset translates
// between the two.
package interp

// Sample is one instant of one entity's kinematics. Immutable once pushed.
type Sample struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	ServerTime float64
	ClientTime float64
}

// lerpSample interpolates every numeric field independently, including the
// timestamps themselves so diagnostics can report the effective sample time.
func lerpSample(from, to Sample, t float64) Sample {
	return Sample{
		X:          from.X + (to.X-from.X)*t,
		Y:          from.Y + (to.Y-from.Y)*t,
		Z:          from.Z + (to.Z-from.Z)*t,
		VX:         from.VX + (to.VX-from.VX)*t,
		VY:         from.VY + (to.VY-from.VY)*t,
		VZ:         from.VZ + (to.VZ-from.VZ)*t,
		ServerTime: from.ServerTime + (to.ServerTime-from.ServerTime)*t,
		ClientTime: from.ClientTime + (to.ClientTime-from.ClientTime)*t,
	}
}
