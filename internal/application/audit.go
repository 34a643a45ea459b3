package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portfolio/internal/domain"
	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/input"
	"portfolio/internal/ports/output"
)

var _ input.AuditUseCase = (*AuditService)(nil)

// AuditService checks the translation store for content maintainers.
type AuditService struct {
	store    *locale.Store
	set      *locale.Set
	notifier output.AuditNotifier
	log      *slog.Logger
}

// NewAuditService creates an AuditService. notifier may be nil.
func NewAuditService(store *locale.Store, set *locale.Set, notifier output.AuditNotifier, log *slog.Logger) *AuditService {
	if log == nil {
		log = slog.Default()
	}
	return &AuditService{store: store, set: set, notifier: notifier, log: log}
}

// Validate fails when a required namespace is missing from the store or
// has no default locale entry. It reports every problem at once.
func (s *AuditService) Validate(ctx context.Context, required []string) error {
	var errs []error
	for _, ns := range required {
		unit, ok := s.store.Unit(ns)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrNamespaceNotFound, ns))
			continue
		}
		if _, ok := unit.Lookup(s.set.Default()); !ok {
			errs = append(errs, fmt.Errorf("%w: %q lacks %q", domain.ErrMissingDefaultLocale, ns, s.set.Default()))
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.log.ErrorContext(ctx, "content validation failed", "problems", len(errs), "error", err)
		return err
	}
	s.log.InfoContext(ctx, "content validated",
		"namespaces", s.store.Len(),
		"required", len(required))
	return nil
}

// Audit reports the configured locales each namespace lacks.
func (s *AuditService) Audit(ctx context.Context) locale.AuditReport {
	report := locale.Audit(s.store, s.set)
	for _, ns := range report.Namespaces {
		if !ns.HasDefault {
			s.log.WarnContext(ctx, "namespace has no default locale entry",
				"namespace", ns.Namespace,
				"default", s.set.Default(),
				"data_integrity", true)
		}
		if len(ns.Missing) > 0 {
			s.log.DebugContext(ctx, "namespace missing translations",
				"namespace", ns.Namespace,
				"missing", ns.Missing)
		}
	}
	s.log.InfoContext(ctx, "translation audit",
		"namespaces", len(report.Namespaces),
		"missing", report.Missing,
		"broken", report.Broken)
	return report
}

// Publish audits the store and hands the report to the notifier.
func (s *AuditService) Publish(ctx context.Context) (locale.AuditReport, error) {
	report := s.Audit(ctx)
	if s.notifier == nil {
		return report, nil
	}
	if err := s.notifier.Notify(ctx, report); err != nil {
		return report, fmt.Errorf("publish audit: %w", err)
	}
	return report, nil
}
