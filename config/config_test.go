package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Branches.Stable != "main" {
		t.Errorf("Branches.Stable = %q, expected %q", cfg.Branches.Stable, "main")
	}
	if cfg.Branches.Staging != "dev" {
		t.Errorf("Branches.Staging = %q, expected %q", cfg.Branches.Staging, "dev")
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, expected %q", cfg.Remote, "origin")
	}
	if cfg.ScratchFile != "edit.txt" {
		t.Errorf("ScratchFile = %q, expected %q", cfg.ScratchFile, "edit.txt")
	}
	if cfg.Schedule.WeekdayMax != 15 {
		t.Errorf("Schedule.WeekdayMax = %d, expected 15", cfg.Schedule.WeekdayMax)
	}
	if cfg.Schedule.WeekendMax != 3 {
		t.Errorf("Schedule.WeekendMax = %d, expected 3", cfg.Schedule.WeekendMax)
	}
	if cfg.Schedule.HalveThreshold != 5 {
		t.Errorf("Schedule.HalveThreshold = %d, expected 5", cfg.Schedule.HalveThreshold)
	}
	if cfg.Schedule.HourMin != 9 || cfg.Schedule.HourMax != 22 {
		t.Errorf("Schedule hours = [%d, %d], expected [9, 22]", cfg.Schedule.HourMin, cfg.Schedule.HourMax)
	}
	if cfg.Schedule.FlushEveryDays != 10 {
		t.Errorf("Schedule.FlushEveryDays = %d, expected 10", cfg.Schedule.FlushEveryDays)
	}
	if cfg.Schedule.BackfillWeeks != 53 {
		t.Errorf("Schedule.BackfillWeeks = %d, expected 53", cfg.Schedule.BackfillWeeks)
	}
	if len(cfg.Guard.Allow) != 1 || cfg.Guard.Allow[0] != "edit.txt" {
		t.Errorf("Guard.Allow = %v, expected the scratch file only", cfg.Guard.Allow)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gardener.json")
	data := `{
		"branches": {"stable": "trunk", "staging": "work"},
		"scratchFile": "note.txt",
		"schedule": {"weekdayMax": 8, "weekendMax": 2, "halveThreshold": 4,
			"hourMin": 10, "hourMax": 18, "flushEveryDays": 5, "backfillWeeks": 26}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Branches.Stable != "trunk" || cfg.Branches.Staging != "work" {
		t.Errorf("branches = %+v, expected trunk/work", cfg.Branches)
	}
	if cfg.ScratchFile != "note.txt" {
		t.Errorf("ScratchFile = %q, expected %q", cfg.ScratchFile, "note.txt")
	}
	if cfg.Schedule.WeekdayMax != 8 {
		t.Errorf("Schedule.WeekdayMax = %d, expected 8", cfg.Schedule.WeekdayMax)
	}
	// Untouched fields keep their defaults.
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, expected the default", cfg.Remote)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Branches.Stable != "main" {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Branches)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "same stable and staging",
			mutate:  func(c *Config) { c.Branches.Staging = c.Branches.Stable },
			wantErr: "must differ",
		},
		{
			name:    "empty branch",
			mutate:  func(c *Config) { c.Branches.Stable = "" },
			wantErr: "must be named",
		},
		{
			name:    "empty scratch file",
			mutate:  func(c *Config) { c.ScratchFile = "" },
			wantErr: "scratchFile",
		},
		{
			name:    "inverted hours",
			mutate:  func(c *Config) { c.Schedule.HourMin = 20; c.Schedule.HourMax = 9 },
			wantErr: "hourMin",
		},
		{
			name:    "zero flush cadence",
			mutate:  func(c *Config) { c.Schedule.FlushEveryDays = 0 },
			wantErr: "flushEveryDays",
		},
		{
			name:    "non-positive message weight",
			mutate:  func(c *Config) { c.Messages = []MessageEntry{{Text: "x", Weight: 0}} },
			wantErr: "non-positive weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")

	cfg := DefaultConfig()
	cfg.Branches.Stable = "release"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Branches.Stable != "release" {
		t.Errorf("Branches.Stable = %q, expected %q", loaded.Branches.Stable, "release")
	}
}
