package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"portfolio/internal/domain/locale"
	"portfolio/internal/domain/mode"
)

// Site holds the locale and mode settings of the site.
type Site struct {
	DefaultLocale       string       `toml:"default_locale"`
	DefaultMode         mode.Mode    `toml:"default_mode"`
	PrefixDefaultLocale bool         `toml:"prefix_default_locale"`
	Locales             []SiteLocale `toml:"locales"`
	// Facets lists the mode-faceted fields per namespace.
	Facets map[string][]string `toml:"facets"`
}

// SiteLocale is one configured locale.
type SiteLocale struct {
	Tag   string `toml:"tag"`
	Label string `toml:"label"`
}

// LoadSite reads the site settings from a TOML file.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: lecture de %s: %w", path, err)
	}
	return ParseSite(data)
}

// ParseSite decodes TOML site settings. default_mode falls back to fullstack.
func ParseSite(data []byte) (*Site, error) {
	site := &Site{DefaultMode: mode.Fullstack}
	if err := toml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("config: site invalide: %w", err)
	}
	if len(site.Locales) == 0 {
		return nil, fmt.Errorf("config: site sans locales")
	}
	if site.DefaultLocale == "" {
		site.DefaultLocale = site.Locales[0].Tag
	}
	return site, nil
}

// LocaleSet builds the configured locale set.
func (s *Site) LocaleSet() (*locale.Set, error) {
	tags := make([]locale.Tag, 0, len(s.Locales))
	labels := make(map[locale.Tag]string, len(s.Locales))
	for _, l := range s.Locales {
		tag := locale.Tag(l.Tag)
		tags = append(tags, tag)
		labels[tag] = l.Label
	}
	set, err := locale.NewSet(tags, locale.Tag(s.DefaultLocale),
		locale.WithPrefixedDefault(s.PrefixDefaultLocale),
		locale.WithLabels(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return set, nil
}
