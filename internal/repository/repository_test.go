package repository

import (
	"context"
	"testing"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKey(t *testing.T) {
	onMain := domain.SourceLinks{WebURL: "https://gitlab.example.com/a", Ref: "main"}
	dev := domain.SourceLinks{WebURL: "https://gitlab.example.com/a", Ref: "dev"}

	assert.Equal(t, "analysis:7@https://gitlab.example.com/a#main", RenderKey(KindAnalysis, "7", onMain))
	assert.NotEqual(t, RenderKey(KindAnalysis, "7", onMain), RenderKey(KindAnalysis, "7", dev))
	assert.NotEqual(t, RenderKey(KindAnalysis, "7", onMain), RenderKey(KindCommitReview, "7", onMain))
}

func TestNopCache(t *testing.T) {
	var c RenderCache = NopCache{}

	require.NoError(t, c.Put(context.Background(), domain.RenderedDocument{Key: "k"}))

	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
