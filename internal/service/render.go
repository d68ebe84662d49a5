package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/diagram"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/YusovID/review-dashboard/internal/repository"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
)

// DiagramProcessor renders the diagram blocks of an HTML fragment.
type DiagramProcessor interface {
	Process(ctx context.Context, fragment string) (diagram.Result, error)
}

// DocumentRenderer turns Markdown into a RenderedDocument, memoising
// documents that rendered without diagram failures.
type DocumentRenderer struct {
	markdown *markdown.Renderer
	diagrams DiagramProcessor
	cache    repository.RenderCache
	log      *slog.Logger
	now      func() time.Time
}

// NewDocumentRenderer builds a renderer. A nil diagrams leaves diagram
// blocks for the browser; a nil cache disables caching.
func NewDocumentRenderer(
	md *markdown.Renderer, diagrams DiagramProcessor, cache repository.RenderCache, log *slog.Logger,
) *DocumentRenderer {
	if cache == nil {
		cache = repository.NopCache{}
	}

	return &DocumentRenderer{
		markdown: md,
		diagrams: diagrams,
		cache:    cache,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Render renders src with file references linked through links. An empty key
// bypasses the cache.
func (r *DocumentRenderer) Render(
	ctx context.Context, key, src string, links domain.SourceLinks,
) (domain.RenderedDocument, error) {
	const op = "internal.service.DocumentRenderer.Render"

	log := r.log.With(slog.String("op", op), slog.String("key", key))

	if key != "" {
		doc, err := r.cache.Get(ctx, key)
		if err == nil {
			log.Debug("render cache hit")
			return doc, nil
		}

		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Warn("render cache read failed", sl.Err(err))
		}
	}

	html, err := r.markdown.Render(src, links)
	if err != nil {
		return domain.RenderedDocument{}, fmt.Errorf("%s: %w", op, err)
	}

	res := diagram.Result{HTML: html}

	if r.diagrams != nil {
		res, err = r.diagrams.Process(ctx, html)
		if err != nil {
			return domain.RenderedDocument{}, fmt.Errorf("%s: diagrams: %w", op, err)
		}
	}

	doc := domain.RenderedDocument{
		Key:              key,
		Markdown:         src,
		HTML:             res.HTML,
		DiagramsRendered: res.Rendered,
		DiagramsFailed:   res.Failed,
		RenderedAt:       r.now(),
	}

	// Failed diagrams may be transient renderer errors; render again next time.
	if key != "" && res.Failed == 0 {
		if err := r.cache.Put(ctx, doc); err != nil {
			log.Warn("render cache write failed", sl.Err(err))
		}
	}

	return doc, nil
}
