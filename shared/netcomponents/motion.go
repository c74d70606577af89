package netcomponents

import "github.com/yohamta/donburi"

// MotionData is an entity's authoritative velocity in world units per second.
type MotionData struct {
	VX, VY, VZ float64
}

var Motion = donburi.NewComponentType[MotionData]()

// LerpMotion interpolates between two velocities
func LerpMotion(from, to MotionData, t float64) *MotionData {
	return &MotionData{
		VX: from.VX + (to.VX-from.VX)*t,
		VY: from.VY + (to.VY-from.VY)*t,
		VZ: from.VZ + (to.VZ-from.VZ)*t,
	}
}
