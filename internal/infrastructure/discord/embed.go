package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/output"
)

const (
	colorComplete = 0x57F287
	colorMissing  = 0xFEE75C
	colorBroken   = 0xED4245

	// Discord rejects embeds with more than 25 fields.
	maxFields = 25
)

func formatMissing(tags []locale.Tag) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "`" + string(tag) + "`"
	}
	return strings.Join(parts, ", ")
}

func auditColor(report locale.AuditReport) int {
	switch {
	case report.Broken > 0:
		return colorBroken
	case !report.Complete():
		return colorMissing
	default:
		return colorComplete
	}
}

// BuildAuditEmbed renders report in lang. Only namespaces with missing
// translations get a field; overflow is summarized in the footer.
func BuildAuditEmbed(report locale.AuditReport, tr output.T, lang string, locales int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🌐 " + tr.T(lang, "audit.title", nil),
		Color: auditColor(report),
	}

	incomplete := make([]locale.NamespaceAudit, 0, len(report.Namespaces))
	for _, ns := range report.Namespaces {
		if len(ns.Missing) > 0 {
			incomplete = append(incomplete, ns)
		}
	}
	if len(incomplete) == 0 {
		embed.Description = tr.T(lang, "audit.complete", map[string]any{"Locales": locales})
		return embed
	}
	embed.Description = tr.Plural(lang, "audit.summary", len(incomplete), nil)

	for i, ns := range incomplete {
		if i == maxFields {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("+%d", len(incomplete)-maxFields)}
			break
		}
		value := formatMissing(ns.Missing)
		if !ns.HasDefault {
			value += "\n⚠️ **" + tr.T(lang, "audit.missing_default", nil) + "**"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  ns.Namespace,
			Value: value,
		})
	}
	return embed
}
