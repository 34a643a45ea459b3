package i18n

import (
	"io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator() *Translator {
	return NewTranslator("en", slog.New(slog.DiscardHandler))
}

func TestTranslate(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"english", "en", "error.not_found", nil, "Page not found."},
		{"portuguese", "pt", "error.not_found", nil, "Página não encontrada."},
		{"french", "fr", "error.namespace_not_found", nil, "Ce contenu n'est pas disponible."},
		{"regional locale matches base", "en-GB", "error.not_found", nil, "Page not found."},
		{"spanish audit", "es", "audit.title", nil, "Auditoría de traducciones"},
		{"unknown locale uses default", "", "error.internal", nil, "Something went wrong. Please try again later."},
		{"unknown key returns key", "en", "error.unknown", nil, "error.unknown"},
		{"empty key", "en", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}

func TestPlural(t *testing.T) {
	tr := newTestTranslator()

	assert.Equal(t, "1 namespace is missing translations.", tr.Plural("en", "audit.summary", 1, nil))
	assert.Equal(t, "3 namespaces are missing translations.", tr.Plural("en", "audit.summary", 3, nil))
	assert.Equal(t, "2 namespaces sem traduções.", tr.Plural("pt", "audit.summary", 2, nil))
}

func TestPluralKeepsCallerData(t *testing.T) {
	tr := newTestTranslator()
	data := map[string]any{"Locales": 7}

	assert.Equal(t, "Every namespace is translated into all 7 locales.", tr.Plural("en", "audit.complete", 0, data))
	assert.NotContains(t, data, "Count")
}

func TestTranslateFallsBackToDefaultLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"active.en.toml": {Data: []byte("[\"audit.title\"]\nother = \"Translation audit\"\n\n[\"audit.summary\"]\none = \"{{.Count}} namespace\"\nother = \"{{.Count}} namespaces\"\n")},
		"active.es.toml": {Data: []byte("[\"error.not_found\"]\nother = \"Página no encontrada.\"\n")},
	}
	tr := newTranslator(fsys, "en", slog.New(slog.DiscardHandler))

	assert.Equal(t, "Página no encontrada.", tr.T("es", "error.not_found", nil))
	assert.Equal(t, "Translation audit", tr.T("es", "audit.title", nil))
	assert.Equal(t, "2 namespaces", tr.Plural("es", "audit.summary", 2, nil))
	assert.Equal(t, "Translation audit", tr.T("de", "audit.title", nil))
	assert.Equal(t, "audit.unknown", tr.T("es", "audit.unknown", nil))
}

func TestCatalogsDefineEveryMessage(t *testing.T) {
	ids := func(file string) []string {
		data, err := fs.ReadFile(localeFS, file)
		require.NoError(t, err)
		var messages map[string]any
		require.NoError(t, toml.Unmarshal(data, &messages))
		keys := make([]string, 0, len(messages))
		for k := range messages {
			keys = append(keys, k)
		}
		return keys
	}

	want := ids("active.en.toml")
	files, err := fs.Glob(localeFS, "active.*.toml")
	require.NoError(t, err)
	assert.Len(t, files, 6)
	for _, file := range files {
		assert.ElementsMatch(t, want, ids(file), file)
	}
}
