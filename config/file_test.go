package config

import (
	"os"
	"path/filepath"
	"testing"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	savedC := C
	savedNetcode := Netcode
	t.Cleanup(func() {
		C = savedC
		Netcode = savedNetcode
	})
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	restoreGlobals(t)
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "driftwars.yaml")
	body := "netcode:\n  playbackDelayMs: 250\n  sampleBufferCapacity: 64\nclient:\n  pilotName: vega\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("load config: %v", err)
	}

	if Netcode.PlaybackDelayMs != 250 {
		t.Fatalf("expected playback delay 250, got %v", Netcode.PlaybackDelayMs)
	}
	if Netcode.SampleBufferCapacity != 64 {
		t.Fatalf("expected sample capacity 64, got %d", Netcode.SampleBufferCapacity)
	}
	if C.PilotName != "vega" {
		t.Fatalf("expected pilot name override, got %q", C.PilotName)
	}
	// Untouched fields keep their defaults.
	if Netcode.ExtrapolationCeilingMs != 200 {
		t.Fatalf("expected untouched ceiling default, got %v", Netcode.ExtrapolationCeilingMs)
	}
}

func TestLoadFileRejectsMalformedYAML(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "driftwars.yaml")
	if err := os.WriteFile(path, []byte("netcode: ["), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if err := LoadFile(path); err == nil {
		t.Fatalf("expected a parse error for malformed yaml")
	}
}
