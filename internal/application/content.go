package application

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/locale"
	"portfolio/internal/domain/mode"
	"portfolio/internal/ports/input"
	"portfolio/internal/ports/output"
)

// LookupsMetric counts content lookups by the "fallback" attribute: none,
// default, first_available or not_found.
const LookupsMetric = "portfolio.content.lookups"

const (
	fallbackKey      = "fallback"
	fallbackNotFound = "not_found"
)

var _ input.ContentUseCase = (*ContentService)(nil)

// ContentService resolves localized content from a loaded store. It is safe
// for concurrent use: the store is read-only and lookups are recorded on an
// OpenTelemetry counter.
type ContentService struct {
	store       *locale.Store
	set         *locale.Set
	defaultMode mode.Mode
	namespaces  []string
	facets      map[string][]string
	log         *slog.Logger

	meter   metric.Meter
	lookups metric.Int64Counter
	reader  output.CounterReader
}

// ContentOption customizes a ContentService.
type ContentOption func(*ContentService)

// WithPageNamespaces sets the namespaces resolved for every page.
func WithPageNamespaces(namespaces ...string) ContentOption {
	return func(s *ContentService) { s.namespaces = append([]string(nil), namespaces...) }
}

// WithFacets declares the mode-faceted fields of a namespace.
func WithFacets(namespace string, fields ...string) ContentOption {
	return func(s *ContentService) { s.facets[namespace] = append([]string(nil), fields...) }
}

// WithMetrics records lookups on meter; reader serves them back to Stats.
func WithMetrics(meter metric.Meter, reader output.CounterReader) ContentOption {
	return func(s *ContentService) {
		s.meter = meter
		s.reader = reader
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) ContentOption {
	return func(s *ContentService) { s.log = l }
}

func NewContentService(store *locale.Store, set *locale.Set, defaultMode mode.Mode, opts ...ContentOption) *ContentService {
	s := &ContentService{
		store:       store,
		set:         set,
		defaultMode: defaultMode,
		namespaces:  []string{"profile", "nav", "theme"},
		facets:      map[string][]string{"profile": {"role", "bio"}},
		log:         slog.Default(),
		meter:       noop.NewMeterProvider().Meter("portfolio/application"),
	}
	for _, opt := range opts {
		opt(s)
	}

	lookups, err := s.meter.Int64Counter(LookupsMetric,
		metric.WithDescription("Content lookups by fallback step."),
		metric.WithUnit("1"),
	)
	if err != nil {
		// only an invalid instrument name fails here
		panic(fmt.Sprintf("create %s counter: %v", LookupsMetric, err))
	}
	s.lookups = lookups
	return s
}

func (s *ContentService) count(ctx context.Context, namespace, fallback string) {
	s.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String(fallbackKey, fallback),
		attribute.String("namespace", namespace),
	))
}

// Content returns the content of namespace for tag. Missing translations
// are logged and served through the fallback chain; an unknown namespace is
// returned as an error.
func (s *ContentService) Content(ctx context.Context, namespace string, tag locale.Tag) (locale.Resolution, error) {
	res, err := locale.GetContent(s.store, namespace, tag, s.set.Default())
	if err != nil {
		s.count(ctx, namespace, fallbackNotFound)
		s.log.ErrorContext(ctx, "content lookup failed",
			"namespace", namespace,
			"locale", tag,
			"error", err)
		return res, err
	}

	s.count(ctx, namespace, res.Fallback.String())
	switch res.Fallback {
	case locale.FallbackDefault:
		s.log.WarnContext(ctx, "translation missing, serving default locale",
			"namespace", namespace,
			"requested", res.Requested,
			"served", res.Served)
	case locale.FallbackFirstAvailable:
		s.log.WarnContext(ctx, "default locale missing, serving first available",
			"namespace", namespace,
			"requested", res.Requested,
			"served", res.Served,
			"data_integrity", true)
	}
	return res, nil
}

// ModeContent returns the content of namespace with fields narrowed to m.
// Without fields the whole payload is treated as mode-faceted.
func (s *ContentService) ModeContent(ctx context.Context, namespace string, tag locale.Tag, m mode.Mode, fields ...string) (locale.Resolution, error) {
	res, err := s.Content(ctx, namespace, tag)
	if err != nil {
		return res, err
	}
	if len(fields) == 0 {
		res.Payload = s.localize(mode.Select(res.Payload, m, s.defaultMode), res.Requested)
		return res, nil
	}
	res.Payload = s.localizeFields(res.Payload, res.Requested, m, fields)
	return res, nil
}

// Page resolves every page namespace for the route at path.
func (s *ContentService) Page(ctx context.Context, path string) (*entities.Page, error) {
	tag := s.set.FromPath(path)
	bare := s.set.StripPrefix(path)
	m, ok := mode.Parse(locale.FirstSegment(bare))
	if !ok {
		m = s.defaultMode
	}

	content := make(map[string]any, len(s.namespaces))
	for _, ns := range s.namespaces {
		res, err := s.Content(ctx, ns, tag)
		if err != nil {
			return nil, err
		}
		content[ns] = s.localizeFields(res.Payload, tag, m, s.facets[ns])
	}

	return &entities.Page{
		Locale:  tag,
		Mode:    m,
		Path:    bare,
		Variant: m.Variant(),
		Content: content,
		Locales: s.Locales(path),
		Modes:   s.modeOptions(tag, m),
	}, nil
}

// Locales returns the locale switcher for path.
func (s *ContentService) Locales(path string) []entities.LocaleOption {
	current := s.set.FromPath(path)
	tags := s.set.Tags()
	out := make([]entities.LocaleOption, 0, len(tags))
	for _, tag := range tags {
		out = append(out, entities.LocaleOption{
			Tag:    tag,
			Label:  s.set.Label(tag),
			Href:   s.set.TranslatePath(path, tag),
			Active: tag == current,
		})
	}
	return out
}

// Stats returns the lookup totals since startup. Without a reader every
// total is zero.
func (s *ContentService) Stats(ctx context.Context) (entities.FallbackStats, error) {
	if s.reader == nil {
		return entities.FallbackStats{}, nil
	}
	totals, err := s.reader.CounterTotals(ctx, LookupsMetric, fallbackKey)
	if err != nil {
		return entities.FallbackStats{}, fmt.Errorf("read lookup stats: %w", err)
	}
	return entities.FallbackStats{
		Exact:          uint64(totals[locale.FallbackNone.String()]),
		Default:        uint64(totals[locale.FallbackDefault.String()]),
		FirstAvailable: uint64(totals[locale.FallbackFirstAvailable.String()]),
		NotFound:       uint64(totals[fallbackNotFound]),
	}, nil
}

func (s *ContentService) modeOptions(tag locale.Tag, current mode.Mode) []entities.ModeOption {
	modes := mode.All()
	out := make([]entities.ModeOption, 0, len(modes))
	for _, m := range modes {
		out = append(out, entities.ModeOption{
			Mode:    m,
			Href:    s.set.TranslatePath("/"+m.String(), tag),
			Active:  m == current,
			Variant: m.Variant(),
		})
	}
	return out
}

// localizeFields returns a copy of a map payload with inline translations
// resolved and the given fields narrowed to mode m. Other payloads are
// returned unchanged.
func (s *ContentService) localizeFields(payload locale.Payload, tag locale.Tag, m mode.Mode, fields []string) locale.Payload {
	src, ok := payload.(map[string]any)
	if !ok {
		return s.localize(payload, tag)
	}
	faceted := make(map[string]bool, len(fields))
	for _, f := range fields {
		faceted[f] = true
	}

	out := make(map[string]any, len(src))
	for key, v := range src {
		v = s.localize(v, tag)
		if faceted[key] {
			// inline translations may sit on either side of the mode map
			v = s.localize(mode.Select(v, m, s.defaultMode), tag)
		}
		out[key] = v
	}
	return out
}

func (s *ContentService) localize(v locale.Payload, tag locale.Tag) locale.Payload {
	return locale.ResolveInline(v, s.set.Coerce(tag), s.set)
}
