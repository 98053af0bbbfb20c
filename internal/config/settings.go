// Package config loads user settings and the paths they live under.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UISettings stores user-facing display and interaction preferences.
type UISettings struct {
	ShowKeymapHints bool
	// AutoScrollEdgeRows is the height of the edge zone, in rows, that
	// triggers auto-scroll while dragging a card.
	AutoScrollEdgeRows int
	// AutoScrollMaxSpeed is the peak auto-scroll velocity in rows per
	// frame.
	AutoScrollMaxSpeed float64
}

// DefaultUISettings returns the settings used when no config file exists.
func DefaultUISettings() UISettings {
	return UISettings{
		ShowKeymapHints:    true,
		AutoScrollEdgeRows: 3,
		AutoScrollMaxSpeed: 2,
	}
}

// LoadUISettings reads settings from path, falling back to defaults for
// missing or malformed values.
func LoadUISettings(path string) UISettings {
	settings := DefaultUISettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	var raw struct {
		UI struct {
			ShowKeymapHints    *bool    `json:"show_keymap_hints"`
			AutoScrollEdgeRows *int     `json:"auto_scroll_edge_rows"`
			AutoScrollMaxSpeed *float64 `json:"auto_scroll_max_speed"`
		} `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	if raw.UI.ShowKeymapHints != nil {
		settings.ShowKeymapHints = *raw.UI.ShowKeymapHints
	}
	if raw.UI.AutoScrollEdgeRows != nil && *raw.UI.AutoScrollEdgeRows > 0 {
		settings.AutoScrollEdgeRows = *raw.UI.AutoScrollEdgeRows
	}
	if raw.UI.AutoScrollMaxSpeed != nil && *raw.UI.AutoScrollMaxSpeed > 0 {
		settings.AutoScrollMaxSpeed = *raw.UI.AutoScrollMaxSpeed
	}
	return settings
}

// SaveUISettings persists settings to path, preserving unknown top-level
// keys already present in the file.
func SaveUISettings(path string, settings UISettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}
	payload["ui"] = map[string]any{
		"show_keymap_hints":     settings.ShowKeymapHints,
		"auto_scroll_edge_rows": settings.AutoScrollEdgeRows,
		"auto_scroll_max_speed": settings.AutoScrollMaxSpeed,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
