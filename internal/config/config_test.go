package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	work, brk := cfg.Durations()
	if work != 25*time.Minute {
		t.Errorf("expected default work duration 25m, got %v", work)
	}
	if brk != 5*time.Minute {
		t.Errorf("expected default break duration 5m, got %v", brk)
	}
	if cfg.Server.URL != "http://localhost:5000" {
		t.Errorf("expected default server URL http://localhost:5000, got %q", cfg.Server.URL)
	}
	if time.Duration(cfg.Server.Timeout) != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Server.Timeout)
	}
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
}

func TestDuration_TextRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "minutes", input: "25m", want: 25 * time.Minute},
		{name: "composite", input: "1h30m", want: 90 * time.Minute},
		{name: "seconds", input: "45s", want: 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			if err := d.UnmarshalText([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalText(%q) unexpected error = %v", tt.input, err)
			}
			if time.Duration(d) != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, time.Duration(d), tt.want)
			}

			text, err := d.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() unexpected error = %v", err)
			}
			var back Duration
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("re-unmarshal of %q unexpected error = %v", text, err)
			}
			if back != d {
				t.Errorf("round trip changed value: %v != %v", back, d)
			}
		})
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("UnmarshalText should reject garbage input")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyPreset(50*time.Minute, 10*time.Minute)

	work, brk := cfg.Durations()
	if work != 50*time.Minute || brk != 10*time.Minute {
		t.Errorf("ApplyPreset() = %v/%v, want 50m/10m", work, brk)
	}
}
