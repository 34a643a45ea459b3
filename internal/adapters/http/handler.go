package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio/internal/domain/locale"
	"portfolio/internal/domain/mode"
	"portfolio/internal/ports/input"
	"portfolio/internal/ports/output"
)

// Handler serves resolved content as JSON.
type Handler struct {
	content     input.ContentUseCase
	set         *locale.Set
	defaultMode mode.Mode
	tr          output.T
	log         *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(content input.ContentUseCase, set *locale.Set, defaultMode mode.Mode, tr output.T, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		content:     content,
		set:         set,
		defaultMode: defaultMode,
		tr:          tr,
		log:         log,
	}
}

// reservedSegments are first path segments owned by non-page routes.
var reservedSegments = map[string]bool{"api": true, "healthz": true}

// Page handles GET /, /:first and /:first/:second.
//
// With ?negotiate=1 an unprefixed path is served in the locale that best
// matches the Accept-Language header.
func (h *Handler) Page(c *gin.Context) {
	path := c.Request.URL.Path
	if reservedSegments[locale.FirstSegment(path)] {
		h.NotFound(c)
		return
	}

	if bare := requestPath(c); c.Query("negotiate") == "1" && bare == path {
		tag := h.set.Negotiate(c.GetHeader("Accept-Language"))
		path = h.set.TranslatePath(bare, tag)
	}

	page, err := h.content.Page(c.Request.Context(), path)
	if err != nil {
		h.fail(c, h.set.FromPath(path), err)
		return
	}
	successResponse(c, page)
}

// Content handles GET /api/content/*namespace.
//
// Query parameters: locale (coerced to the default when not configured),
// mode and fields (comma separated, mode-faceted fields of a map payload).
func (h *Handler) Content(c *gin.Context) {
	ctx := c.Request.Context()
	namespace := strings.Trim(c.Param("namespace"), "/")
	tag := h.queryLocale(c)

	raw, hasMode := c.GetQuery("mode")
	if !hasMode {
		res, err := h.content.Content(ctx, namespace, tag)
		if err != nil {
			h.fail(c, tag, err)
			return
		}
		successResponse(c, res)
		return
	}

	m, ok := mode.Parse(raw)
	if !ok {
		m = h.defaultMode
	}
	res, err := h.content.ModeContent(ctx, namespace, tag, m, splitFields(c.Query("fields"))...)
	if err != nil {
		h.fail(c, tag, err)
		return
	}
	successResponse(c, res)
}

// Locales handles GET /api/locales?path=.
func (h *Handler) Locales(c *gin.Context) {
	successResponse(c, h.content.Locales(c.DefaultQuery("path", "/")))
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.content.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, requestLocale(c, h.set.Default()), err)
		return
	}
	successResponse(c, stats)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unknown routes with a localized error.
func (h *Handler) NotFound(c *gin.Context) {
	tag := requestLocale(c, h.set.Default())
	errorResponse(c, http.StatusNotFound, errorTypeNotFound, h.tr.T(string(tag), "error.not_found", nil))
}

func (h *Handler) queryLocale(c *gin.Context) locale.Tag {
	if q := c.Query("locale"); q != "" {
		return h.set.Coerce(locale.Tag(q))
	}
	return requestLocale(c, h.set.Default())
}

func (h *Handler) fail(c *gin.Context, tag locale.Tag, err error) {
	status, errorType, key := describeError(err)
	h.log.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path,
		"type", errorType,
		"error", err)
	errorResponse(c, status, errorType, h.tr.T(string(tag), key, nil))
}

func splitFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
