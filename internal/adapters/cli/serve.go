package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpapi "portfolio/internal/adapters/http"
	"portfolio/internal/application"
	"portfolio/internal/infrastructure/i18n"
	"portfolio/internal/infrastructure/telemetry"
	"portfolio/internal/shared/logger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Load the translation store, check that every required namespace has a
default locale entry and serve pages and content over HTTP.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}

	audit := application.NewAuditService(store, a.set, nil, logger.WithComponent("audit"))
	if err := audit.Validate(ctx, a.cfg.RequiredNamespaces); err != nil {
		return fmt.Errorf("content validation: %w", err)
	}
	audit.Audit(ctx)

	metrics := telemetry.NewMetrics()
	defer func() {
		if err := metrics.Shutdown(context.Background()); err != nil {
			a.log.Warn("metrics shutdown", "error", err)
		}
	}()

	opts := append(a.contentOptions(), application.WithMetrics(metrics.Meter("portfolio/application"), metrics))
	content := application.NewContentService(store, a.set, a.site.DefaultMode, opts...)
	tr := i18n.NewTranslator(string(a.set.Default()), logger.WithComponent("i18n"))

	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}
	httpLog := logger.WithComponent("http")
	handler := httpapi.NewHandler(content, a.set, a.site.DefaultMode, tr, httpLog)
	router := httpapi.NewRouter(handler, httpLog, a.cfg.ServerMode)

	return httpapi.NewServer(a.cfg.HTTPAddr, router, httpLog).Run(ctx)
}
