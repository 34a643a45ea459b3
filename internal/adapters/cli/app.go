// Package cli holds the cobra commands of the portfolio binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/application"
	"portfolio/internal/config"
	"portfolio/internal/domain/locale"
	"portfolio/internal/infrastructure/content"
	"portfolio/internal/infrastructure/database"
	"portfolio/internal/ports/output"
	"portfolio/internal/shared/logger"
)

// app is the state shared by every command once configuration is loaded.
type app struct {
	cfg  *config.Config
	site *config.Site
	set  *locale.Set
	log  *slog.Logger

	pool *pgxpool.Pool
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	site, err := config.LoadSite(cfg.SiteConfig)
	if err != nil {
		return nil, err
	}
	set, err := site.LocaleSet()
	if err != nil {
		return nil, err
	}
	log.Info("site loaded",
		"locales", len(set.Tags()),
		"default_locale", set.Default(),
		"default_mode", site.DefaultMode)

	return &app{cfg: cfg, site: site, set: set, log: log}, nil
}

// connect opens the database pool once.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if a.pool != nil {
		return a.pool, nil
	}
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL, logger.WithComponent("database"))
	if err != nil {
		return nil, err
	}
	a.pool = pool
	return pool, nil
}

// contentOptions configures the content service from the environment and
// the site facets.
func (a *app) contentOptions() []application.ContentOption {
	opts := []application.ContentOption{
		application.WithLogger(logger.WithComponent("content")),
		application.WithPageNamespaces(a.cfg.RequiredNamespaces...),
	}
	for namespace, fields := range a.site.Facets {
		opts = append(opts, application.WithFacets(namespace, fields...))
	}
	return opts
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// fsLoader reads content from CONTENT_DIR.
func (a *app) fsLoader() output.StoreLoader {
	return content.NewLoader(os.DirFS(a.cfg.ContentDir), a.set, logger.WithComponent("content"))
}

// loader returns the loader of the configured content source.
func (a *app) loader(ctx context.Context) (output.StoreLoader, error) {
	switch a.cfg.ContentSource {
	case config.SourcePostgres:
		pool, err := a.connect(ctx)
		if err != nil {
			return nil, err
		}
		return database.NewTranslationRepository(pool, a.set, logger.WithComponent("database")), nil
	case config.SourceFS:
		return a.fsLoader(), nil
	default:
		return nil, fmt.Errorf("unknown content source %q", a.cfg.ContentSource)
	}
}

// loadStore loads the full translation store from the configured source.
func (a *app) loadStore(ctx context.Context) (*locale.Store, error) {
	loader, err := a.loader(ctx)
	if err != nil {
		return nil, err
	}
	store, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", a.cfg.ContentSource, err)
	}
	return store, nil
}
