package output

import (
	"context"

	"portfolio/internal/domain/locale"
)

// StoreLoader builds the translation store once, before any request is served.
type StoreLoader interface {
	Load(ctx context.Context) (*locale.Store, error)
}

// StoreWriter persists a translation store. Used by sync tooling only;
// request handling never writes.
type StoreWriter interface {
	Save(ctx context.Context, store *locale.Store) (int, error)
}
