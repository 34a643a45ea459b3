package http

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/output"
)

// Context keys set by the Locale middleware.
const (
	ctxLocale = "locale"
	ctxPath   = "locale_path"
)

// Locale stores the locale resolved from the request path and the path
// without its locale prefix.
func Locale(set *locale.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		c.Set(ctxLocale, set.FromPath(p))
		c.Set(ctxPath, set.StripPrefix(p))
		c.Next()
	}
}

// requestLocale returns the locale stored by the Locale middleware, or def.
func requestLocale(c *gin.Context, def locale.Tag) locale.Tag {
	if v, ok := c.Get(ctxLocale); ok {
		if tag, ok := v.(locale.Tag); ok {
			return tag
		}
	}
	return def
}

// requestPath returns the path stored by the Locale middleware, or the raw
// request path.
func requestPath(c *gin.Context) string {
	if p := c.GetString(ctxPath); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// RequestLogger logs every request once it completes.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}
		if v, ok := c.Get(ctxLocale); ok {
			args = append(args, "locale", v)
		}
		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.ErrorContext(ctx, "HTTP request completed with server error", args...)
		case status >= 400:
			log.WarnContext(ctx, "HTTP request completed with client error", args...)
		default:
			log.DebugContext(ctx, "HTTP request completed successfully", args...)
		}
	}
}

// Recovery turns panics into a localized internal error response.
func Recovery(log *slog.Logger, tr output.T, def locale.Tag) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		tag := requestLocale(c, def)
		errorResponse(c, http.StatusInternalServerError, errorTypeInternal, tr.T(string(tag), "error.internal", nil))
	})
}
