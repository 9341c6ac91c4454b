// Package monitor assists manual trade-group browsing: it opens the monitored
// groups in the operator's browser, captures business-card screenshots, and
// files them under the prospect's name. Group platforms block automation, so
// the human scrolls and the tooling only captures.
package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Group is one monitored community. Tier 1 is highest priority.
type Group struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Tier           int    `json:"tier"`
	CheckFrequency string `json:"check_frequency"`
}

// Config is the monitoring-assist configuration document.
type Config struct {
	Groups           []Group  `json:"groups"`
	Keywords         []string `json:"keywords"`
	ScreenshotHotkey string   `json:"screenshot_hotkey"`
	CheckTimes       []string `json:"check_times"`
}

// DefaultConfig returns the starter group list and keyword set.
func DefaultConfig() Config {
	return Config{
		Groups: []Group{
			{Name: "Nashville Contractors & Subcontractors", URL: "https://www.facebook.com/groups/nashvillecontractors", Tier: 1, CheckFrequency: "daily"},
			{Name: "Memphis Area Contractors", URL: "https://www.facebook.com/groups/memphiscontractors", Tier: 1, CheckFrequency: "daily"},
			{Name: "Tennessee Home Improvement & Contractors", URL: "https://www.facebook.com/groups/tnhomeimprovement", Tier: 1, CheckFrequency: "daily"},
			{Name: "Nashville Handyman Services", URL: "https://www.facebook.com/groups/nashvillehandyman", Tier: 1, CheckFrequency: "daily"},
			{Name: "Who Do You Recommend Nashville", URL: "https://www.facebook.com/groups/whodoyourecommendnashville", Tier: 3, CheckFrequency: "daily"},
			{Name: "Knoxville Contractors Network", URL: "https://www.facebook.com/groups/knoxvillecontractors", Tier: 2, CheckFrequency: "weekly"},
			{Name: "Chattanooga Home Services", URL: "https://www.facebook.com/groups/chattanoogahomeservices", Tier: 2, CheckFrequency: "weekly"},
		},
		Keywords: []string{
			"business card", "card", "contact", "here's my card",
			"recommend", "looking for", "need a", "know a good",
			"contractor", "handyman", "plumber", "electrician",
			"HVAC", "roofer", "painter", "landscaper",
		},
		ScreenshotHotkey: "cmd+shift+4",
		CheckTimes:       []string{"08:00", "12:00", "17:00"},
	}
}

// LoadConfig reads the config document. When the file is absent the defaults
// are written back to disk and returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := SaveConfig(path, cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read monitor config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse monitor config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the config document, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode monitor config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write monitor config: %w", err)
	}
	return nil
}

// FilterTier returns the groups in the given tier; tier 0 means all groups.
func (c Config) FilterTier(tier int) []Group {
	if tier == 0 {
		return c.Groups
	}
	var out []Group
	for _, g := range c.Groups {
		if g.Tier == tier {
			out = append(out, g)
		}
	}
	return out
}
