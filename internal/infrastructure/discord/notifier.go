package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/output"
)

var _ output.AuditNotifier = (*Notifier)(nil)

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts audit reports to a Discord channel.
type Notifier struct {
	sender    embedSender
	channelID string
	tr        output.T
	lang      string
	locales   int
	log       *slog.Logger
}

// NewNotifier creates a bot session for token. Messages are rendered in the
// default locale of set.
func NewNotifier(token, channelID string, tr output.T, set *locale.Set, log *slog.Logger) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return newNotifier(s, channelID, tr, set, log), nil
}

func newNotifier(sender embedSender, channelID string, tr output.T, set *locale.Set, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		tr:        tr,
		lang:      string(set.Default()),
		locales:   len(set.Tags()),
		log:       log,
	}
}

// Notify sends report as an embed.
func (n *Notifier) Notify(ctx context.Context, report locale.AuditReport) error {
	embed := BuildAuditEmbed(report, n.tr, n.lang, n.locales)
	msg, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send audit to channel %s: %w", n.channelID, err)
	}
	n.log.InfoContext(ctx, "audit posted to discord",
		"channel_id", n.channelID,
		"message_id", msg.ID,
		"fields", len(embed.Fields))
	return nil
}
