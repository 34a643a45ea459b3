package locale

import (
	"fmt"

	"portfolio/internal/domain"
)

// Fallback tells which step of the fallback chain served a resolution.
type Fallback int

const (
	// FallbackNone means the requested locale was served.
	FallbackNone Fallback = iota
	// FallbackDefault means the default locale was served instead.
	FallbackDefault
	// FallbackFirstAvailable means neither the requested nor the default
	// locale existed and the first locale of the unit was served.
	FallbackFirstAvailable
)

func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackDefault:
		return "default"
	case FallbackFirstAvailable:
		return "first_available"
	default:
		return fmt.Sprintf("fallback(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Fallback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fallback) UnmarshalText(text []byte) error {
	for _, v := range []Fallback{FallbackNone, FallbackDefault, FallbackFirstAvailable} {
		if v.String() == string(text) {
			*f = v
			return nil
		}
	}
	return fmt.Errorf("unknown fallback %q", text)
}

// Resolution is the outcome of a content lookup.
type Resolution struct {
	Namespace string   `json:"namespace"`
	Requested Tag      `json:"requested"`
	Served    Tag      `json:"served"`
	Fallback  Fallback `json:"fallback"`
	Payload   Payload  `json:"payload"`
}

// GetContent returns the content of namespace for tag using the chain
// requested -> def -> first available locale of the unit.
//
// A namespace missing from store is a configuration fault and is reported
// as domain.ErrNamespaceNotFound. Missing translations are not errors; the
// Fallback field of the result tells the caller what happened.
func GetContent(store *Store, namespace string, tag, def Tag) (Resolution, error) {
	res := Resolution{Namespace: namespace, Requested: tag}

	unit, ok := store.Unit(namespace)
	if !ok {
		return res, fmt.Errorf("%w: %q", domain.ErrNamespaceNotFound, namespace)
	}

	if p, ok := unit.Lookup(tag); ok {
		res.Served, res.Payload = tag, p
		return res, nil
	}
	if p, ok := unit.Lookup(def); ok {
		res.Served, res.Payload, res.Fallback = def, p, FallbackDefault
		return res, nil
	}
	if unit.Len() == 0 {
		return res, fmt.Errorf("%w: %q", domain.ErrEmptyTranslationUnit, namespace)
	}
	first := unit.order[0]
	res.Served, res.Payload, res.Fallback = first, unit.entries[first], FallbackFirstAvailable
	return res, nil
}

// ResolveInline applies the fallback chain to a value that embeds its own
// translations, such as {"en": "Hello", "pt": "Olá"}. A map is treated as
// inline translations only when at least one of its keys is a configured
// locale; any other value is returned unchanged.
func ResolveInline(value Payload, tag Tag, set *Set) Payload {
	m, ok := value.(map[string]any)
	if !ok || len(m) == 0 {
		return value
	}

	inline := false
	for key := range m {
		if set.Contains(Tag(key)) {
			inline = true
			break
		}
	}
	if !inline {
		return value
	}

	if v, ok := m[string(tag)]; ok {
		return v
	}
	if v, ok := m[string(set.def)]; ok {
		return v
	}
	for _, t := range set.tags {
		if v, ok := m[string(t)]; ok {
			return v
		}
	}
	return value
}
