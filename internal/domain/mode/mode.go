// Package mode models the presentation modes of the portfolio. Content
// of some namespaces varies along this axis, e.g. a "backend" or a
// "frontend" framing of the same bio.
package mode

import (
	"fmt"
	"strings"
)

// Mode is a presentation variant. The set of modes is closed: adding one
// means adding a constant, a name and a variant below.
type Mode uint8

const (
	Fullstack Mode = iota
	Frontend
	Backend
	DevOps
	Database
	AI
)

// All returns every mode in display order.
func All() []Mode {
	return []Mode{Fullstack, Frontend, Backend, DevOps, Database, AI}
}

func (m Mode) String() string {
	switch m {
	case Fullstack:
		return "fullstack"
	case Frontend:
		return "frontend"
	case Backend:
		return "backend"
	case DevOps:
		return "devops"
	case Database:
		return "database"
	case AI:
		return "ai"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Parse returns the mode named s (case-insensitive).
func Parse(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range All() {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("mode: unknown mode %q", string(text))
	}
	*m = parsed
	return nil
}

// Variant holds the presentation attributes of a mode.
type Variant struct {
	Accent string `json:"accent"`
	Icon   string `json:"icon"`
	Light  bool   `json:"light"`
}

// Variant returns the presentation attributes of m.
func (m Mode) Variant() Variant {
	switch m {
	case Fullstack:
		return Variant{Accent: "brand-600", Icon: "layers"}
	case Frontend:
		return Variant{Accent: "pink-500", Icon: "code", Light: true}
	case Backend:
		return Variant{Accent: "green-600", Icon: "server"}
	case DevOps:
		return Variant{Accent: "orange-600", Icon: "terminal"}
	case Database:
		return Variant{Accent: "blue-600", Icon: "database"}
	case AI:
		return Variant{Accent: "purple-600", Icon: "bot"}
	default:
		panic(fmt.Sprintf("mode: no variant for %s", m))
	}
}

// Select picks the value of m from a mode-faceted payload. When m is
// absent it falls back to def, and when def is absent too the payload is
// returned unchanged as non-faceted content.
func Select(payload any, m, def Mode) any {
	switch p := payload.(type) {
	case map[string]any:
		if v, ok := p[m.String()]; ok {
			return v
		}
		if v, ok := p[def.String()]; ok {
			return v
		}
	case map[string]string:
		if v, ok := p[m.String()]; ok {
			return v
		}
		if v, ok := p[def.String()]; ok {
			return v
		}
	}
	return payload
}
