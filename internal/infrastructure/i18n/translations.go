package i18n

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"portfolio/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en").
//
// It loads every embedded active.*.toml file.
func NewTranslator(defaultLocale string, log *slog.Logger) *Translator {
	return newTranslator(localeFS, defaultLocale, log)
}

func newTranslator(fsys fs.FS, defaultLocale string, log *slog.Logger) *Translator {
	if log == nil {
		log = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(fsys, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			log.Error("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// Plural renders a count-dependent message. Count is added to data so
// templates can refer to {{.Count}}.
func (t *Translator) Plural(locale, key string, count int, data map[string]any) string {
	td := make(map[string]any, len(data)+1)
	for k, v := range data {
		td[k] = v
	}
	td["Count"] = count
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: td,
	})
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	msg, err := i18n.NewLocalizer(t.bundle, languages...).Localize(cfg)
	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) && len(languages) > 1 {
		// the localizer settles on the first matched language even when it
		// lacks the message
		msg, err = i18n.NewLocalizer(t.bundle, t.defaultLanguage.String()).Localize(cfg)
	}
	if err != nil {
		t.log.Warn("i18n: localize failed", "key", cfg.MessageID, "locales", languages, "error", err)
		return cfg.MessageID
	}
	return msg
}
