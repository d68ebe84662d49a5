package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/jmoiron/sqlx"
)

const renderedDocumentsTable = "rendered_documents"

var renderedDocumentColumns = []string{
	"key", "markdown", "html", "diagrams_rendered", "diagrams_failed", "rendered_at",
}

type RenderCache struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewRenderCache(db *sqlx.DB, log *slog.Logger) *RenderCache {
	return &RenderCache{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (rc *RenderCache) Get(ctx context.Context, key string) (domain.RenderedDocument, error) {
	const op = "internal.repository.postgres.RenderCache.Get"

	query, args, err := rc.sq.Select(renderedDocumentColumns...).
		From(renderedDocumentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return domain.RenderedDocument{}, fmt.Errorf("%s: failed to build select query: %w", op, err)
	}

	var doc domain.RenderedDocument
	if err := rc.db.GetContext(ctx, &doc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RenderedDocument{}, fmt.Errorf("%w: rendered document '%s'", apperrors.ErrNotFound, key)
		}

		return domain.RenderedDocument{}, fmt.Errorf("%s: failed to get rendered document: %w", op, err)
	}

	return doc, nil
}

func (rc *RenderCache) Put(ctx context.Context, doc domain.RenderedDocument) error {
	const op = "internal.repository.postgres.RenderCache.Put"

	log := rc.log.With(slog.String("op", op))

	query, args, err := rc.sq.Insert(renderedDocumentsTable).
		Columns(renderedDocumentColumns...).
		Values(doc.Key, doc.Markdown, doc.HTML, doc.DiagramsRendered, doc.DiagramsFailed, doc.RenderedAt).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			markdown = EXCLUDED.markdown,
			html = EXCLUDED.html,
			diagrams_rendered = EXCLUDED.diagrams_rendered,
			diagrams_failed = EXCLUDED.diagrams_failed,
			rendered_at = EXCLUDED.rendered_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build upsert query: %w", op, err)
	}

	if _, err := rc.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to store rendered document: %w", op, err)
	}

	log.Debug("rendered document stored", slog.String("key", doc.Key))

	return nil
}
