// Package config holds the demo's environment-driven defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultToggleInterval is how often the demo flips between loading and loaded.
	DefaultToggleInterval = 3 * time.Second
	// DefaultItems is how many list items the demo shows.
	DefaultItems = 10
)

// Environment variables read for defaults.
const (
	EnvLayout   = "SHIMMER_LAYOUT"
	EnvDebug    = "SHIMMER_DEBUG"
	EnvPulse    = "SHIMMER_PULSE"
	EnvToggle   = "SHIMMER_TOGGLE"
	EnvBackdrop = "SHIMMER_BACKDROP"
)

// Config is the demo configuration. Flags override the defaults it is
// created with.
type Config struct {
	LayoutPath string
	DebugLog   string
	Pulse      time.Duration
	Toggle     time.Duration
	Backdrop   string
	Items      int

	RightToLeft bool
	Custom      bool
	Static      bool
	Width       int
}

// FromEnv returns the defaults, overridden by any environment settings that
// parse. Pulse falls back to zero, which the loader reads as its default.
func FromEnv() Config {
	return Config{
		LayoutPath: os.Getenv(EnvLayout),
		DebugLog:   os.Getenv(EnvDebug),
		Pulse:      durationEnv(EnvPulse, 0),
		Toggle:     durationEnv(EnvToggle, DefaultToggleInterval),
		Backdrop:   os.Getenv(EnvBackdrop),
		Items:      DefaultItems,
	}
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
