package config

import "image/color"

// Overlay palette for the debug renderer and HUD.
var (
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	LightGreen  = color.RGBA{0x90, 0xee, 0x90, 0xff}
	BrightGreen = color.RGBA{0x00, 0xff, 0x66, 0xff}
	ShipBlue    = color.RGBA{0x4f, 0x9d, 0xff, 0xff}
	DroneAmber  = color.RGBA{0xff, 0xb3, 0x30, 0xff}
	BoltRed     = color.RGBA{0xff, 0x45, 0x45, 0xff}
	FrozenGray  = color.RGBA{0x6a, 0x6a, 0x6a, 0xff}
)
