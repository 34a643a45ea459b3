// Package locale resolves request locales and localized content from an
// immutable translation store.
//
// Everything here is a pure function of its arguments: the store, the
// configured locale set and the requested namespace are always passed in
// explicitly, so the package holds no global state and is safe for
// concurrent use.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"portfolio/internal/domain"
)

// Tag identifies a configured locale, e.g. "en" or "en-GB".
type Tag string

func (t Tag) String() string { return string(t) }

// Set is the ordered collection of configured locales with its default.
type Set struct {
	tags          []Tag
	index         map[Tag]int
	def           Tag
	prefixDefault bool
	labels        map[Tag]string

	matcher   language.Matcher
	supported []Tag // matcher order: default first
}

// Option customizes a Set.
type Option func(*Set)

// WithPrefixedDefault serves the default locale under "/<default>" like
// every other locale instead of at the site root.
func WithPrefixedDefault(prefixed bool) Option {
	return func(s *Set) { s.prefixDefault = prefixed }
}

// WithLabels overrides the display label of some locales. Locales without
// a label use their own native name.
func WithLabels(labels map[Tag]string) Option {
	return func(s *Set) {
		for tag, label := range labels {
			if label = strings.TrimSpace(label); label != "" {
				s.labels[tag] = label
			}
		}
	}
}

// NewSet validates tags and builds a Set. The order of tags is kept and is
// the order used for last-resort fallbacks and locale switchers.
func NewSet(tags []Tag, def Tag, opts ...Option) (*Set, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: no locales configured", domain.ErrInvalidLocaleSet)
	}

	s := &Set{
		tags:   make([]Tag, 0, len(tags)),
		index:  make(map[Tag]int, len(tags)),
		def:    def,
		labels: make(map[Tag]string, len(tags)),
	}

	parsed := make(map[Tag]language.Tag, len(tags))
	for _, tag := range tags {
		if _, dup := s.index[tag]; dup {
			return nil, fmt.Errorf("%w: locale %q listed twice", domain.ErrInvalidLocaleSet, tag)
		}
		lt, err := language.Parse(string(tag))
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", domain.ErrInvalidLocaleSet, tag, err)
		}
		parsed[tag] = lt
		s.index[tag] = len(s.tags)
		s.tags = append(s.tags, tag)
		s.labels[tag] = nativeName(lt, tag)
	}

	if _, ok := s.index[def]; !ok {
		return nil, fmt.Errorf("%w: default locale %q is not configured", domain.ErrInvalidLocaleSet, def)
	}

	for _, opt := range opts {
		opt(s)
	}

	// language.Matcher falls back to its first entry, so the default leads.
	s.supported = append(s.supported, def)
	langs := []language.Tag{parsed[def]}
	for _, tag := range s.tags {
		if tag == def {
			continue
		}
		s.supported = append(s.supported, tag)
		langs = append(langs, parsed[tag])
	}
	s.matcher = language.NewMatcher(langs)

	return s, nil
}

func nativeName(lt language.Tag, tag Tag) string {
	if name := display.Self.Name(lt); name != "" {
		return name
	}
	return string(tag)
}

// Tags returns the configured locales in order.
func (s *Set) Tags() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Default returns the default locale.
func (s *Set) Default() Tag { return s.def }

// PrefixDefault reports whether the default locale is served under a path prefix.
func (s *Set) PrefixDefault() bool { return s.prefixDefault }

// Contains reports whether tag is configured.
func (s *Set) Contains(tag Tag) bool {
	_, ok := s.index[tag]
	return ok
}

// Label returns the display label of tag.
func (s *Set) Label(tag Tag) string {
	if label, ok := s.labels[tag]; ok {
		return label
	}
	return string(tag)
}

// Coerce returns tag when configured, the default locale otherwise.
func (s *Set) Coerce(tag Tag) Tag {
	if s.Contains(tag) {
		return tag
	}
	return s.def
}

// Negotiate picks the configured locale that best matches an
// Accept-Language header value. Unparseable or unmatched headers yield the
// default locale.
func (s *Set) Negotiate(acceptLanguage string) Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return s.def
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return s.def
	}
	_, idx, conf := s.matcher.Match(wanted...)
	if conf == language.No || idx < 0 || idx >= len(s.supported) {
		return s.def
	}
	return s.supported[idx]
}
