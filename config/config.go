package config

// NetcodeConfig contains the runtime-mutable netcode tunables. None of these
// are persisted implicitly; SaveSettings captures the user-facing ones.
type NetcodeConfig struct {
	// Samples held per entity. Must exceed
	// (playback delay + expected jitter) / average send interval,
	// or underruns become frequent.
	SampleBufferCapacity int `yaml:"sampleBufferCapacity"`

	// Whole-world snapshots retained for bracket queries.
	SnapshotBufferCapacity int `yaml:"snapshotBufferCapacity"`

	// How far render time trails real time, in ms.
	PlaybackDelayMs float64 `yaml:"playbackDelayMs"`

	// Gap past the last known sample after which positions freeze, in ms.
	ExtrapolationCeilingMs float64 `yaml:"extrapolationCeilingMs"`

	// Fixed intent steps allowed per frame before the remainder is dropped.
	MaxFixedStepsPerFrame int `yaml:"maxFixedStepsPerFrame"`

	// Fixed intent cadence, in steps per second.
	FixedStepRate int `yaml:"fixedStepRate"`
}

// ClientConfig contains window and connection configuration.
type ClientConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	ServerAddress string `yaml:"serverAddress"`
	PilotName     string `yaml:"pilotName"`
	ShowHUD       bool   `yaml:"showHud"`
}

// Version is the protocol version sent in the join handshake.
const Version = "0.4.1"

// C is the global client configuration.
var C ClientConfig

// Netcode is the global netcode configuration.
var Netcode NetcodeConfig

func init() {
	C = ClientConfig{
		Width:         1280,
		Height:        720,
		ServerAddress: "127.0.0.1:9040",
		PilotName:     "pilot",
		ShowHUD:       true,
	}
	Netcode = NetcodeConfig{
		SampleBufferCapacity:   32,
		SnapshotBufferCapacity: 16,
		PlaybackDelayMs:        100,
		ExtrapolationCeilingMs: 200,
		MaxFixedStepsPerFrame:  5,
		FixedStepRate:          60,
	}
}
