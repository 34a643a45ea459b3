package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"portfolio/internal/application"
	"portfolio/internal/domain/locale"
	"portfolio/internal/infrastructure/discord"
	"portfolio/internal/infrastructure/i18n"
	"portfolio/internal/ports/output"
	"portfolio/internal/shared/logger"
)

type auditOptions struct {
	format string
	notify bool
	strict bool
}

func newAuditCommand() *cobra.Command {
	opts := &auditOptions{}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report missing translations",
		Long: `List, for every namespace, the configured locales that have no
translation. With --notify the report is also posted to the Discord channel
configured by DISCORD_AUDIT_CHANNEL_ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAudit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "Post the report to Discord")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when a translation is missing")

	return cmd
}

func runAudit(cmd *cobra.Command, opts *auditOptions) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}

	tr := i18n.NewTranslator(string(a.set.Default()), logger.WithComponent("i18n"))

	var notifier output.AuditNotifier
	if opts.notify {
		if !a.cfg.NotifyDiscord() {
			return fmt.Errorf("--notify requires DISCORD_TOKEN and DISCORD_AUDIT_CHANNEL_ID")
		}
		n, err := discord.NewNotifier(a.cfg.DiscordToken, a.cfg.DiscordAuditChannelID, tr, a.set, logger.WithComponent("discord"))
		if err != nil {
			return err
		}
		notifier = n
	}

	svc := application.NewAuditService(store, a.set, notifier, logger.WithComponent("audit"))
	report, err := svc.Publish(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), report, opts.format, tr, string(a.set.Default())); err != nil {
		return err
	}
	if opts.strict && !report.Complete() {
		return fmt.Errorf("%d missing translations", report.Missing)
	}
	return nil
}

func writeReport(w io.Writer, report locale.AuditReport, format string, tr output.T, lang string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeReportText(w, report, tr, lang)
	default:
		return fmt.Errorf("unknown format %q (text, json, yaml)", format)
	}
}

func writeReportText(w io.Writer, report locale.AuditReport, tr output.T, lang string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	incomplete := 0
	for _, ns := range report.Namespaces {
		status := "ok"
		if len(ns.Missing) > 0 {
			incomplete++
			missing := make([]string, len(ns.Missing))
			for i, tag := range ns.Missing {
				missing[i] = string(tag)
			}
			status = "missing " + strings.Join(missing, ", ")
		}
		if !ns.HasDefault {
			status += " (" + tr.T(lang, "audit.missing_default", nil) + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\n", ns.Namespace, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if incomplete > 0 {
		_, err := fmt.Fprintln(w, tr.Plural(lang, "audit.summary", incomplete, nil))
		return err
	}
	return nil
}
