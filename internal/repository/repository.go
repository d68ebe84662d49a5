// package repository defines the persistence contracts of the dashboard.
// The only thing the dashboard stores itself is rendered documents; every
// other record lives in GitLab or in the review backend.
package repository

import (
	"context"
	"fmt"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
)

// RenderCache memoises rendered documents of immutable records.
type RenderCache interface {
	// Get returns the document stored under key.
	// It returns apperrors.ErrNotFound on a miss.
	Get(ctx context.Context, key string) (domain.RenderedDocument, error)

	// Put stores doc under doc.Key, replacing any previous version.
	Put(ctx context.Context, doc domain.RenderedDocument) error
}

// Document kinds used in cache keys.
const (
	KindAnalysis     = "analysis"
	KindCommitReview = "commit"
)

// RenderKey identifies a rendition of one record under one link context, so
// the same record linked against different refs never collides.
func RenderKey(kind, id string, links domain.SourceLinks) string {
	return fmt.Sprintf("%s:%s@%s#%s", kind, id, links.WebURL, links.Ref)
}

// NopCache is a RenderCache that never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (domain.RenderedDocument, error) {
	return domain.RenderedDocument{}, apperrors.ErrNotFound
}

func (NopCache) Put(context.Context, domain.RenderedDocument) error {
	return nil
}
