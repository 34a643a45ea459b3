package entities

import (
	"portfolio/internal/domain/locale"
	"portfolio/internal/domain/mode"
)

// Page is the resolved content of one site route.
type Page struct {
	Locale  locale.Tag     `json:"locale"`
	Mode    mode.Mode      `json:"mode"`
	Path    string         `json:"path"`
	Variant mode.Variant   `json:"variant"`
	Content map[string]any `json:"content"`
	Locales []LocaleOption `json:"locales"`
	Modes   []ModeOption   `json:"modes"`
}

// LocaleOption is one entry of the locale switcher.
type LocaleOption struct {
	Tag    locale.Tag `json:"tag"`
	Label  string     `json:"label"`
	Href   string     `json:"href"`
	Active bool       `json:"active"`
}

// ModeOption is one entry of the mode switcher.
type ModeOption struct {
	Mode    mode.Mode    `json:"mode"`
	Href    string       `json:"href"`
	Active  bool         `json:"active"`
	Variant mode.Variant `json:"variant"`
}

// FallbackStats counts how content lookups were served since startup.
type FallbackStats struct {
	Exact          uint64 `json:"exact"`
	Default        uint64 `json:"default"`
	FirstAvailable uint64 `json:"first_available"`
	NotFound       uint64 `json:"not_found"`
}
