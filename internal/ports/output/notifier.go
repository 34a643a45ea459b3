package output

import (
	"context"

	"portfolio/internal/domain/locale"
)

// AuditNotifier publishes translation coverage reports to content maintainers.
type AuditNotifier interface {
	Notify(ctx context.Context, report locale.AuditReport) error
}
