package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Branches    BranchConfig   `json:"branches"`
	Remote      string         `json:"remote"`
	ScratchFile string         `json:"scratchFile"`
	Schedule    ScheduleConfig `json:"schedule"`
	Messages    []MessageEntry `json:"messages"`
	Guard       GuardConfig    `json:"guard"`
}

// BranchConfig names the two references compared to decide the run mode.
type BranchConfig struct {
	Stable  string `json:"stable"`  // Default: "main"
	Staging string `json:"staging"` // Default: "dev"
}

// ScheduleConfig tunes the commit schedule generator and the push cadence.
type ScheduleConfig struct {
	WeekdayMax     int `json:"weekdayMax"`     // Default: 15
	WeekendMax     int `json:"weekendMax"`     // Default: 3
	HalveThreshold int `json:"halveThreshold"` // Default: 5
	HourMin        int `json:"hourMin"`        // Default: 9
	HourMax        int `json:"hourMax"`        // Default: 22
	FlushEveryDays int `json:"flushEveryDays"` // Default: 10
	BackfillWeeks  int `json:"backfillWeeks"`  // Default: 53
}

// MessageEntry is one configurable commit message with a selection weight.
// An empty Messages list falls back to the built-in pool.
type MessageEntry struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// GuardConfig holds the worktree safety allowlist consulted before a
// destructive branch reset.
type GuardConfig struct {
	Allow []string `json:"allow"` // Glob patterns for dirty paths that are safe to discard
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Branches: BranchConfig{
			Stable:  "main",
			Staging: "dev",
		},
		Remote:      "origin",
		ScratchFile: "edit.txt",
		Schedule: ScheduleConfig{
			WeekdayMax:     15,
			WeekendMax:     3,
			HalveThreshold: 5,
			HourMin:        9,
			HourMax:        22,
			FlushEveryDays: 10,
			BackfillWeeks:  53,
		},
		Messages: []MessageEntry{},
		Guard: GuardConfig{
			Allow: []string{"edit.txt"},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("GARDENER_CONFIG")
	}

	if path == "" {
		// Try default locations
		candidates := []string{".gardener.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gardener.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the generator and controller cannot work with.
func (c *Config) Validate() error {
	if c.Branches.Stable == "" || c.Branches.Staging == "" {
		return fmt.Errorf("both stable and staging branches must be named")
	}
	if c.Branches.Stable == c.Branches.Staging {
		return fmt.Errorf("stable and staging branches must differ")
	}
	if c.ScratchFile == "" {
		return fmt.Errorf("scratchFile must not be empty")
	}
	s := c.Schedule
	if s.WeekdayMax < 0 || s.WeekendMax < 0 {
		return fmt.Errorf("commit count maximums must be non-negative")
	}
	if s.HourMin < 0 || s.HourMax > 23 || s.HourMin > s.HourMax {
		return fmt.Errorf("commit hours must satisfy 0 <= hourMin <= hourMax <= 23")
	}
	if s.FlushEveryDays < 1 {
		return fmt.Errorf("flushEveryDays must be at least 1")
	}
	if s.BackfillWeeks < 1 {
		return fmt.Errorf("backfillWeeks must be at least 1")
	}
	for _, m := range c.Messages {
		if m.Weight <= 0 {
			return fmt.Errorf("message %q has non-positive weight %d", m.Text, m.Weight)
		}
	}
	return nil
}
