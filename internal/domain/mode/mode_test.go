package mode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryModeIsComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		name := m.String()
		require.NotContains(t, name, "mode(", "mode %d has no name", m)
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true

		parsed, ok := Parse(name)
		require.True(t, ok)
		assert.Equal(t, m, parsed)

		assert.NotPanics(t, func() { _ = m.Variant() }, "mode %s has no variant", name)
		assert.NotEmpty(t, m.Variant().Icon)
	}
}

func TestParse(t *testing.T) {
	m, ok := Parse(" Backend ")
	assert.True(t, ok)
	assert.Equal(t, Backend, m)

	_, ok = Parse("mobile")
	assert.False(t, ok)
}

func TestUnknownModeVariantPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Mode(200).Variant() })
}

func TestTextMarshaling(t *testing.T) {
	out, err := json.Marshal(map[string]Mode{"mode": DevOps})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"devops"}`, string(out))

	var in struct {
		Mode Mode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"ai"}`), &in))
	assert.Equal(t, AI, in.Mode)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"mobile"}`), &in))
}

func TestSelect(t *testing.T) {
	payload := map[string]any{"fullstack": "A", "backend": "B"}

	tests := []struct {
		name    string
		payload any
		mode    Mode
		def     Mode
		want    any
	}{
		{"present", payload, Backend, Fullstack, "B"},
		{"missing falls back to default", payload, AI, Fullstack, "A"},
		{"missing default returns payload", payload, AI, Database, payload},
		{"string map", map[string]string{"frontend": "F"}, Frontend, Fullstack, "F"},
		{"non faceted string", "plain", AI, Fullstack, "plain"},
		{"nil", nil, AI, Fullstack, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.payload, tt.mode, tt.def))
		})
	}
}
