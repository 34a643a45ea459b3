package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"portfolio/internal/application"
	"portfolio/internal/domain/locale"
)

type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }
func (keyTranslator) Plural(_, key string, count int, _ map[string]any) string {
	return fmt.Sprintf("%s:%d", key, count)
}

var sampleReport = locale.AuditReport{
	Namespaces: []locale.NamespaceAudit{
		{Namespace: "nav", HasDefault: true, Missing: []locale.Tag{}},
		{Namespace: "profile", HasDefault: true, Missing: []locale.Tag{"fr", "ja"}},
		{Namespace: "legacy", HasDefault: false, Missing: []locale.Tag{"en"}},
	},
	Missing: 3,
	Broken:  1,
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleReport, "text", keyTranslator{}, "en"))

	out := buf.String()
	assert.Contains(t, out, "nav      ok\n")
	assert.Contains(t, out, "profile  missing fr, ja\n")
	assert.Contains(t, out, "legacy   missing en (audit.missing_default)\n")
	assert.Contains(t, out, "audit.summary:2\n")
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleReport, "json", keyTranslator{}, "en"))

	var got locale.AuditReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport, got)
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleReport, "yaml", keyTranslator{}, "en"))

	assert.Contains(t, buf.String(), "has_default: false")
	var got locale.AuditReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport, got)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	err := writeReport(&bytes.Buffer{}, sampleReport, "xml", keyTranslator{}, "en")
	assert.ErrorContains(t, err, "xml")
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "audit", "migrate", "sync"}, names)

	migrate, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", migrate.Name())
}

// writeSite lays out a minimal site in a temporary working directory.
func writeSite(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"site.toml": `default_locale = "en"

[facets]
nav = ["title"]

[[locales]]
tag = "en"

[[locales]]
tag = "pt"
`,
		"content/profile/en.json": `{"role": {"fullstack": "Engineer"}}`,
		"content/profile/pt.json": `{"role": {"fullstack": "Engenheiro"}}`,
		"content/nav/en.yaml":     "title:\n  fullstack: Portfolio\n  backend: Backend portfolio\n",
	}
	for name, data := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	t.Chdir(dir)

	t.Setenv("CONTENT_SOURCE", "fs")
	t.Setenv("CONTENT_DIR", "content")
	t.Setenv("SITE_CONFIG", "site.toml")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_AUDIT_CHANNEL_ID", "")
}

func TestAuditCommand(t *testing.T) {
	writeSite(t)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"audit", "--format", "json"})
	require.NoError(t, root.Execute())

	var report locale.AuditReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 1, report.Missing)
	require.Len(t, report.Namespaces, 2)
	assert.Equal(t, "nav", report.Namespaces[0].Namespace)
	assert.Equal(t, []locale.Tag{"pt"}, report.Namespaces[0].Missing)
}

func TestAuditCommandStrict(t *testing.T) {
	writeSite(t)

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"audit", "--strict"})
	assert.ErrorContains(t, root.Execute(), "1 missing translations")
}

func TestAuditCommandNotifyWithoutDiscord(t *testing.T) {
	writeSite(t)

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"audit", "--notify"})
	assert.ErrorContains(t, root.Execute(), "DISCORD_TOKEN")
}

func TestContentOptionsApplySiteFacets(t *testing.T) {
	writeSite(t)
	t.Setenv("REQUIRED_NAMESPACES", "profile,nav")

	a, err := newApp()
	require.NoError(t, err)
	defer a.close()

	ctx := context.Background()
	store, err := a.loadStore(ctx)
	require.NoError(t, err)

	svc := application.NewContentService(store, a.set, a.site.DefaultMode, a.contentOptions()...)
	page, err := svc.Page(ctx, "/pt/backend")
	require.NoError(t, err)
	assert.Equal(t, "Backend portfolio", page.Content["nav"].(map[string]any)["title"])
	assert.Equal(t, "Engenheiro", page.Content["profile"].(map[string]any)["role"])
}
