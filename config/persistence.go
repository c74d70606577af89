package config

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Buffered history
// is never persisted; only user-facing tuning survives restarts.
type SavedSettings struct {
	PlaybackDelayMs        float64 `json:"playbackDelayMs"`
	ExtrapolationCeilingMs float64 `json:"extrapolationCeilingMs"`
	PilotName              string  `json:"pilotName"`
	ServerAddress          string  `json:"serverAddress"`
	ShowHUD                bool    `json:"showHud"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "driftwars",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings copies saved values over the global configuration.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.PlaybackDelayMs > 0 {
		Netcode.PlaybackDelayMs = s.PlaybackDelayMs
	}
	if s.ExtrapolationCeilingMs > 0 {
		Netcode.ExtrapolationCeilingMs = s.ExtrapolationCeilingMs
	}
	if s.PilotName != "" {
		C.PilotName = s.PilotName
	}
	if s.ServerAddress != "" {
		C.ServerAddress = s.ServerAddress
	}
	C.ShowHUD = s.ShowHUD
}

// CurrentSettings snapshots the live configuration for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		PlaybackDelayMs:        Netcode.PlaybackDelayMs,
		ExtrapolationCeilingMs: Netcode.ExtrapolationCeilingMs,
		PilotName:              C.PilotName,
		ServerAddress:          C.ServerAddress,
		ShowHUD:                C.ShowHUD,
	}
}
