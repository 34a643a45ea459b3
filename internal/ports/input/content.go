package input

import (
	"context"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/locale"
	"portfolio/internal/domain/mode"
)

type ContentUseCase interface {
	Content(ctx context.Context, namespace string, tag locale.Tag) (locale.Resolution, error)
	ModeContent(ctx context.Context, namespace string, tag locale.Tag, m mode.Mode, fields ...string) (locale.Resolution, error)
	Page(ctx context.Context, path string) (*entities.Page, error)
	Locales(path string) []entities.LocaleOption
	Stats(ctx context.Context) (entities.FallbackStats, error)
}

type AuditUseCase interface {
	Validate(ctx context.Context, required []string) error
	Audit(ctx context.Context) locale.AuditReport
	Publish(ctx context.Context) (locale.AuditReport, error)
}
