package netcomponents

import "github.com/yohamta/donburi"

// TransformData is an entity's authoritative position in world units.
type TransformData struct {
	X, Y, Z float64
}

var Transform = donburi.NewComponentType[TransformData]()

// LerpTransform interpolates between two positions
func LerpTransform(from, to TransformData, t float64) *TransformData {
	return &TransformData{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		Z: from.Z + (to.Z-from.Z)*t,
	}
}
