package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Content sources.
const (
	SourceFS       = "fs"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":8080"`
	ServerMode string `env:"SERVER_MODE" envDefault:"release"`

	SiteConfig         string   `env:"SITE_CONFIG" envDefault:"site.toml"`
	ContentSource      string   `env:"CONTENT_SOURCE" envDefault:"fs"`
	ContentDir         string   `env:"CONTENT_DIR" envDefault:"content"`
	RequiredNamespaces []string `env:"REQUIRED_NAMESPACES" envDefault:"profile,nav,theme" envSeparator:","`

	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	DiscordToken          string `env:"DISCORD_TOKEN"`
	DiscordAuditChannelID string `env:"DISCORD_AUDIT_CHANNEL_ID"`
}

// Load charge la configuration depuis .env puis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate applique les règles sur la configuration chargée.
func (c *Config) validate() error {
	c.ContentSource = strings.ToLower(strings.TrimSpace(c.ContentSource))
	switch c.ContentSource {
	case SourceFS:
		if strings.TrimSpace(c.ContentDir) == "" {
			return fmt.Errorf("config: CONTENT_DIR est requis avec CONTENT_SOURCE=fs")
		}
	case SourcePostgres:
		if err := validateDatabaseURL(c.DatabaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: CONTENT_SOURCE inconnu %q (fs ou postgres)", c.ContentSource)
	}

	namespaces := c.RequiredNamespaces[:0]
	for _, ns := range c.RequiredNamespaces {
		if ns = strings.TrimSpace(ns); ns != "" {
			namespaces = append(namespaces, ns)
		}
	}
	c.RequiredNamespaces = namespaces

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT invalide %q (console ou json)", c.LogFormat)
	}

	c.ServerMode = strings.ToLower(strings.TrimSpace(c.ServerMode))
	switch c.ServerMode {
	case "":
		c.ServerMode = "release"
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: SERVER_MODE invalide %q (debug, release ou test)", c.ServerMode)
	}

	if (c.DiscordToken == "") != (c.DiscordAuditChannelID == "") {
		return fmt.Errorf("config: DISCORD_TOKEN et DISCORD_AUDIT_CHANNEL_ID vont ensemble")
	}
	for _, r := range c.DiscordAuditChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_AUDIT_CHANNEL_ID doit être un ID de salon Discord (chiffres uniquement)")
		}
	}

	return nil
}

// NotifyDiscord reports whether audit reports should be posted to Discord.
func (c *Config) NotifyDiscord() bool {
	return c.DiscordToken != "" && c.DiscordAuditChannelID != ""
}

// RequireDatabase vérifie DATABASE_URL pour les commandes qui en ont besoin quelle que soit la source.
func (c *Config) RequireDatabase() error {
	return validateDatabaseURL(c.DatabaseURL)
}

func validateDatabaseURL(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return fmt.Errorf("config: DATABASE_URL est requis avec CONTENT_SOURCE=postgres")
	}
	parsed, err := url.Parse(dsn)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", dsn, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", dsn)
	}
	return nil
}
