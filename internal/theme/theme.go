// Package theme persists the light/dark display preference.
package theme

import (
	"context"
	"fmt"
)

// Theme is the display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PreferenceKey is the key under which the theme is stored.
const PreferenceKey = "theme"

// Preferences is a key/value preference store.
type Preferences interface {
	Preference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Load reads the stored theme. Anything other than "dark" is Light.
func Load(ctx context.Context, prefs Preferences) (Theme, error) {
	value, _, err := prefs.Preference(ctx, PreferenceKey)
	if err != nil {
		return Light, fmt.Errorf("failed to read theme: %w", err)
	}
	if Theme(value) == Dark {
		return Dark, nil
	}
	return Light, nil
}

// Toggle flips current and persists the result.
func Toggle(ctx context.Context, prefs Preferences, current Theme) (Theme, error) {
	next := current.Opposite()
	if err := prefs.SetPreference(ctx, PreferenceKey, string(next)); err != nil {
		return current, fmt.Errorf("failed to save theme: %w", err)
	}
	return next, nil
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether the dark class applies.
func (t Theme) IsDark() bool {
	return t == Dark
}
