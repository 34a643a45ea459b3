package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/locale"
)

// keyTranslator renders messages as "<locale>:<key>" so tests can assert on keys.
type keyTranslator struct{}

func (keyTranslator) T(lang, key string, _ map[string]any) string { return lang + ":" + key }
func (keyTranslator) Plural(lang, key string, count int, _ map[string]any) string {
	return fmt.Sprintf("%s:%s:%d", lang, key, count)
}

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ID: "42"}, nil
}

func testSet(t *testing.T) *locale.Set {
	t.Helper()
	set, err := locale.NewSet([]locale.Tag{"en", "pt", "fr"}, "en")
	require.NoError(t, err)
	return set
}

func TestBuildAuditEmbedComplete(t *testing.T) {
	report := locale.AuditReport{Namespaces: []locale.NamespaceAudit{
		{Namespace: "nav", HasDefault: true, Missing: []locale.Tag{}},
	}}

	embed := BuildAuditEmbed(report, keyTranslator{}, "en", 3)
	assert.Equal(t, "🌐 en:audit.title", embed.Title)
	assert.Equal(t, "en:audit.complete", embed.Description)
	assert.Equal(t, colorComplete, embed.Color)
	assert.Empty(t, embed.Fields)
}

func TestBuildAuditEmbedMissing(t *testing.T) {
	report := locale.AuditReport{
		Namespaces: []locale.NamespaceAudit{
			{Namespace: "nav", HasDefault: true, Missing: []locale.Tag{}},
			{Namespace: "profile", HasDefault: true, Missing: []locale.Tag{"pt", "fr"}},
			{Namespace: "legacy", HasDefault: false, Missing: []locale.Tag{"en"}},
		},
		Missing: 3,
		Broken:  1,
	}

	embed := BuildAuditEmbed(report, keyTranslator{}, "pt", 3)
	assert.Equal(t, "pt:audit.summary:2", embed.Description)
	assert.Equal(t, colorBroken, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "profile", embed.Fields[0].Name)
	assert.Equal(t, "`pt`, `fr`", embed.Fields[0].Value)
	assert.Equal(t, "legacy", embed.Fields[1].Name)
	assert.Contains(t, embed.Fields[1].Value, "pt:audit.missing_default")
	assert.Nil(t, embed.Footer)
}

func TestBuildAuditEmbedTruncatesFields(t *testing.T) {
	var report locale.AuditReport
	for i := range 30 {
		report.Namespaces = append(report.Namespaces, locale.NamespaceAudit{
			Namespace:  fmt.Sprintf("ns%02d", i),
			HasDefault: true,
			Missing:    []locale.Tag{"fr"},
		})
		report.Missing++
	}

	embed := BuildAuditEmbed(report, keyTranslator{}, "en", 3)
	assert.Equal(t, colorMissing, embed.Color)
	assert.Len(t, embed.Fields, maxFields)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "+5", embed.Footer.Text)
}

func TestNotify(t *testing.T) {
	sender := &fakeSender{}
	n := newNotifier(sender, "123", keyTranslator{}, testSet(t), slog.New(slog.DiscardHandler))

	err := n.Notify(context.Background(), locale.AuditReport{})
	require.NoError(t, err)
	assert.Equal(t, "123", sender.channelID)
	require.Len(t, sender.embeds, 1)
	assert.Equal(t, "en:audit.complete", sender.embeds[0].Description)
}

func TestNotifyError(t *testing.T) {
	sender := &fakeSender{err: errors.New("401 Unauthorized")}
	n := newNotifier(sender, "123", keyTranslator{}, testSet(t), nil)

	err := n.Notify(context.Background(), locale.AuditReport{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401 Unauthorized")
	assert.Contains(t, err.Error(), "123")
}
