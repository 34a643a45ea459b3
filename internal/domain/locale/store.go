package locale

import (
	"fmt"
	"sort"
	"strings"

	"portfolio/internal/domain"
)

// Payload is localized content as decoded from a content source: a string,
// a number, a bool, []any or map[string]any.
type Payload = any

// Unit holds the translations of one namespace.
type Unit struct {
	namespace string
	order     []Tag
	entries   map[Tag]Payload
}

// Namespace returns the namespace of the unit.
func (u *Unit) Namespace() string { return u.namespace }

// Lookup returns the payload for tag.
func (u *Unit) Lookup(tag Tag) (Payload, bool) {
	p, ok := u.entries[tag]
	return p, ok
}

// Locales returns the locales present in the unit in iteration order.
func (u *Unit) Locales() []Tag {
	out := make([]Tag, len(u.order))
	copy(out, u.order)
	return out
}

// Len returns the number of locales present in the unit.
func (u *Unit) Len() int { return len(u.order) }

// Store is an immutable snapshot of all translation units keyed by namespace.
type Store struct {
	units map[string]*Unit
	names []string
}

// Unit returns the unit of namespace.
func (s *Store) Unit(namespace string) (*Unit, bool) {
	if s == nil {
		return nil, false
	}
	u, ok := s.units[namespace]
	return u, ok
}

// Namespaces returns all namespaces, sorted.
func (s *Store) Namespaces() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of namespaces.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Builder accumulates translations before freezing them into a Store.
// A Builder is not safe for concurrent use.
type Builder struct {
	entries map[string]map[Tag]Payload
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: map[string]map[Tag]Payload{}}
}

// Add records payload as the translation of namespace for tag.
func (b *Builder) Add(namespace string, tag Tag, payload Payload) error {
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	if namespace == "" {
		return fmt.Errorf("add translation: namespace is required")
	}
	if tag == "" {
		return fmt.Errorf("add translation %q: locale is required", namespace)
	}
	unit, ok := b.entries[namespace]
	if !ok {
		unit = map[Tag]Payload{}
		b.entries[namespace] = unit
	}
	if _, dup := unit[tag]; dup {
		return fmt.Errorf("%w: namespace %q, locale %q", domain.ErrDuplicateTranslation, namespace, tag)
	}
	unit[tag] = payload
	return nil
}

// Build freezes the accumulated translations. Each unit iterates its
// locales in the order of set first, then any other locale sorted by tag.
// set may be nil, in which case all locales are sorted by tag.
func (b *Builder) Build(set *Set) *Store {
	store := &Store{
		units: make(map[string]*Unit, len(b.entries)),
		names: make([]string, 0, len(b.entries)),
	}
	for namespace, entries := range b.entries {
		unit := &Unit{
			namespace: namespace,
			order:     make([]Tag, 0, len(entries)),
			entries:   make(map[Tag]Payload, len(entries)),
		}
		for tag, p := range entries {
			unit.entries[tag] = p
			unit.order = append(unit.order, tag)
		}
		sortTags(unit.order, set)
		store.units[namespace] = unit
		store.names = append(store.names, namespace)
	}
	sort.Strings(store.names)
	return store
}

func sortTags(tags []Tag, set *Set) {
	sort.SliceStable(tags, func(i, j int) bool {
		ri, rj := rank(tags[i], set), rank(tags[j], set)
		if ri != rj {
			return ri < rj
		}
		return tags[i] < tags[j]
	})
}

func rank(tag Tag, set *Set) int {
	if set != nil {
		if i, ok := set.index[tag]; ok {
			return i
		}
	}
	return int(^uint(0) >> 1)
}
