package repository

import (
	"context"
	"strings"
	"time"

	"headline-lens/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

const createHeadlinesTable = `
CREATE TABLE IF NOT EXISTS headlines (
    id              BIGSERIAL   PRIMARY KEY,
    external_id     TEXT        NOT NULL UNIQUE,
    text            TEXT        NOT NULL,
    related_symbols TEXT        NOT NULL DEFAULT '',
    category        TEXT        NOT NULL DEFAULT '',
    source          TEXT        NOT NULL DEFAULT '',
    url             TEXT        NOT NULL DEFAULT '',
    published_at    TIMESTAMPTZ NOT NULL,
    fetched_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_headlines_published_at
    ON headlines (published_at DESC);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// HeadlineRepository stores raw headline records. Only provider fields
// are persisted; annotations are derived on read and never written.
type HeadlineRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewHeadlineRepository(pool PgxPool, tracer trace.Tracer) *HeadlineRepository {
	return &HeadlineRepository{pool: pool, tracer: tracer}
}

func (r *HeadlineRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "headline-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createHeadlinesTable)
	return err
}

// InsertHeadlines writes new records, silently skipping external ids
// already present. Returns how many rows were actually inserted.
func (r *HeadlineRepository) InsertHeadlines(ctx context.Context, headlines []domain.Headline) (int64, error) {
	if len(headlines) == 0 {
		return 0, nil
	}

	_, span := r.tracer.Start(ctx, "headline-repo.insert-headlines")
	defer span.End()

	batch := &pgx.Batch{}
	for _, h := range headlines {
		batch.Queue(
			`INSERT INTO headlines (external_id, text, related_symbols, category, source, url, published_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (external_id) DO NOTHING`,
			h.ExternalID, h.Text, normalizeRelated(h.RelatedSymbols), h.Category, h.Source, h.URL, h.PublishedAt,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for range headlines {
		tag, err := br.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// ListRecent returns the newest headlines, most recent first.
func (r *HeadlineRepository) ListRecent(ctx context.Context, limit int) ([]domain.Headline, error) {
	_, span := r.tracer.Start(ctx, "headline-repo.list-recent")
	defer span.End()

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, external_id, text, related_symbols, category, source, url, published_at
		 FROM headlines
		 ORDER BY published_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var headlines []domain.Headline
	for rows.Next() {
		var h domain.Headline
		if err := rows.Scan(&h.ID, &h.ExternalID, &h.Text, &h.RelatedSymbols, &h.Category, &h.Source, &h.URL, &h.PublishedAt); err != nil {
			return nil, err
		}
		headlines = append(headlines, h)
	}
	return headlines, rows.Err()
}

// DeleteOlderThan removes headlines published before cutoff.
func (r *HeadlineRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	_, span := r.tracer.Start(ctx, "headline-repo.delete-older-than")
	defer span.End()

	tag, err := r.pool.Exec(ctx, `DELETE FROM headlines WHERE published_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// normalizeRelated canonicalizes the comma-separated hint: trimmed,
// uppercased, empties dropped. The extractor re-validates on read; this
// only keeps stored rows tidy.
func normalizeRelated(related string) string {
	if strings.TrimSpace(related) == "" {
		return ""
	}
	parts := strings.Split(related, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
