package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	cache, err := Open(path)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	doc := domain.RenderedDocument{
		Key:              "commit:abc@https://gitlab.example.com/a#abc",
		Markdown:         "## 修改建议",
		HTML:             "<h2>修改建议</h2>\n",
		DiagramsRendered: 1,
		DiagramsFailed:   2,
		RenderedAt:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, cache.Put(ctx, doc))

	got, err := cache.Get(ctx, doc.Key)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	doc.HTML = "<h2>v2</h2>\n"
	require.NoError(t, cache.Put(ctx, doc))

	require.NoError(t, cache.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err = reopened.Get(ctx, doc.Key)
	require.NoError(t, err)
	assert.Equal(t, "<h2>v2</h2>\n", got.HTML)
}
