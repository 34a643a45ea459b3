package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine serving h. mode is a gin mode (debug,
// release or test).
func NewRouter(h *Handler, log *slog.Logger, mode string) *gin.Engine {
	gin.SetMode(mode)

	engine := gin.New()
	engine.Use(
		Recovery(log, h.tr, h.set.Default()),
		Locale(h.set),
		RequestLogger(log),
	)

	engine.GET("/healthz", h.Health)

	api := engine.Group("/api")
	{
		api.GET("/content/*namespace", h.Content)
		api.GET("/locales", h.Locales)
		api.GET("/stats", h.Stats)
	}

	engine.GET("/", h.Page)
	engine.GET("/:first", h.Page)
	engine.GET("/:first/:second", h.Page)

	engine.NoRoute(h.NotFound)
	return engine
}

// Server runs an http.Server until its context is cancelled.
type Server struct {
	srv             *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log:             log,
		shutdownTimeout: 30 * time.Second,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.log.Error("server forced to shutdown", "error", err)
		return err
	}
	s.log.Info("server exited gracefully")
	return nil
}
