package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"portfolio/internal/domain/locale"
	"portfolio/internal/ports/output"
)

var (
	_ output.StoreLoader = (*TranslationRepository)(nil)
	_ output.StoreWriter = (*TranslationRepository)(nil)
)

const (
	selectTranslations = `SELECT namespace, locale, payload FROM translations ORDER BY namespace, locale`

	upsertTranslation = `INSERT INTO translations (namespace, locale, payload, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (namespace, locale) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

// DBTX is the subset of *pgxpool.Pool used by the repository.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// TranslationRepository reads and writes translation units in PostgreSQL.
type TranslationRepository struct {
	db  DBTX
	set *locale.Set
	log *slog.Logger
}

// NewTranslationRepository creates a TranslationRepository.
func NewTranslationRepository(db DBTX, set *locale.Set, log *slog.Logger) *TranslationRepository {
	if log == nil {
		log = slog.Default()
	}
	return &TranslationRepository{db: db, set: set, log: log}
}

// Load reads every row of the translations table into a store.
func (r *TranslationRepository) Load(ctx context.Context) (*locale.Store, error) {
	rows, err := r.db.Query(ctx, selectTranslations)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	b := locale.NewBuilder()
	n := 0
	for rows.Next() {
		var (
			namespace, loc string
			raw            []byte
		)
		if err := rows.Scan(&namespace, &loc, &raw); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		tag := locale.Tag(loc)
		if !r.set.Contains(tag) {
			r.log.WarnContext(ctx, "skipping translation for unconfigured locale",
				"namespace", namespace,
				"locale", tag)
			continue
		}
		var payload any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode translation %s/%s: %w", namespace, loc, err)
		}
		if err := b.Add(namespace, tag, payload); err != nil {
			return nil, err
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}

	store := b.Build(r.set)
	r.log.InfoContext(ctx, "content loaded from postgres",
		"rows", n,
		"namespaces", store.Len())
	return store, nil
}

// Save upserts every translation of store in a single batch and returns
// the number of rows written.
func (r *TranslationRepository) Save(ctx context.Context, store *locale.Store) (int, error) {
	batch := &pgx.Batch{}
	for _, ns := range store.Namespaces() {
		unit, _ := store.Unit(ns)
		for _, tag := range unit.Locales() {
			payload, _ := unit.Lookup(tag)
			raw, err := json.Marshal(payload)
			if err != nil {
				return 0, fmt.Errorf("encode translation %s/%s: %w", ns, tag, err)
			}
			batch.Queue(upsertTranslation, ns, string(tag), raw)
		}
	}
	if batch.Len() == 0 {
		return 0, nil
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return i, fmt.Errorf("upsert translation: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return batch.Len(), fmt.Errorf("close batch: %w", err)
	}
	return batch.Len(), nil
}
