// Package config resolves the ccbar configuration: built-in defaults,
// overlaid by an optional theme preset, overlaid by the user's explicit
// values from config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ccbar/internal/styles"
)

type BarConfig struct {
	Style string `json:"style"`
	Width int    `json:"width"`
}

type ColorConfig struct {
	Low           string  `json:"low"`
	Mid           string  `json:"mid"`
	High          string  `json:"high"`
	ThresholdMid  float64 `json:"threshold_mid"`
	ThresholdHigh float64 `json:"threshold_high"`
}

// Config is the fully resolved configuration. Values are not validated here;
// the renderer falls back to defaults for names it does not recognize.
type Config struct {
	Bar      BarConfig   `json:"bar"`
	Colors   ColorConfig `json:"colors"`
	Layout   string      `json:"layout"`
	CacheTTL int         `json:"cache_ttl"`
	Sections []string    `json:"sections"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bar: BarConfig{Style: "default", Width: 8},
		Colors: ColorConfig{
			Low:           "green",
			Mid:           "yellow",
			High:          "red",
			ThresholdMid:  50,
			ThresholdHigh: 80,
		},
		Layout:   "standard",
		CacheTTL: 30,
		Sections: []string{"git", "cwd", "model", "session", "weekly", "context", "credits", "plan"},
	}
}

// Path returns the config file location, next to the executable so every
// install carries its own settings.
func Path() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(exe), "config.json")
}

// userConfig mirrors Config with optional fields so a partial file only
// overrides the keys it names.
type userConfig struct {
	Bar      *userBar    `json:"bar"`
	Theme    string      `json:"theme"`
	Colors   *userColors `json:"colors"`
	Layout   *string     `json:"layout"`
	CacheTTL *int        `json:"cache_ttl"`
	Sections []string    `json:"sections"`
}

type userBar struct {
	Style *string `json:"style"`
	Width *int    `json:"width"`
}

type userColors struct {
	Low           *string  `json:"low"`
	Mid           *string  `json:"mid"`
	High          *string  `json:"high"`
	ThresholdMid  *float64 `json:"threshold_mid"`
	ThresholdHigh *float64 `json:"threshold_high"`
}

// Resolve loads the config file at path and layers it over the defaults.
// A missing or malformed file resolves to the defaults; the default file is
// written back so the user has something to edit. The repair write is best
// effort.
func Resolve(path string) Config {
	var user userConfig
	data, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(data, &user)
	}
	if err != nil {
		user = userConfig{}
		writeDefaults(path)
	}
	return merge(user)
}

func writeDefaults(path string) {
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// merge applies, per key: defaults, then the named theme's colors, then the
// user's explicit values. An unknown theme name contributes nothing.
func merge(user userConfig) Config {
	cfg := Default()
	if user.Bar != nil {
		if user.Bar.Style != nil {
			cfg.Bar.Style = *user.Bar.Style
		}
		if user.Bar.Width != nil {
			cfg.Bar.Width = *user.Bar.Width
		}
	}
	if theme, ok := styles.Themes[user.Theme]; ok {
		cfg.Colors.Low = theme.Low
		cfg.Colors.Mid = theme.Mid
		cfg.Colors.High = theme.High
	}
	if user.Colors != nil {
		if user.Colors.Low != nil {
			cfg.Colors.Low = *user.Colors.Low
		}
		if user.Colors.Mid != nil {
			cfg.Colors.Mid = *user.Colors.Mid
		}
		if user.Colors.High != nil {
			cfg.Colors.High = *user.Colors.High
		}
		if user.Colors.ThresholdMid != nil {
			cfg.Colors.ThresholdMid = *user.Colors.ThresholdMid
		}
		if user.Colors.ThresholdHigh != nil {
			cfg.Colors.ThresholdHigh = *user.Colors.ThresholdHigh
		}
	}
	if user.Layout != nil {
		cfg.Layout = *user.Layout
	}
	if user.CacheTTL != nil {
		cfg.CacheTTL = *user.CacheTTL
	}
	if user.Sections != nil {
		cfg.Sections = user.Sections
	}
	return cfg
}
