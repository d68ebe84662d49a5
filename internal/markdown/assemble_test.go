package markdown

import (
	"strings"
	"testing"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleReview(t *testing.T) {
	review := domain.Review{
		Info: "Summary",
		Suggestion: domain.Suggestions{
			{FilePath: "src/a.py", Code: `x = 1\ny = 2`},
		},
	}

	out := AssembleReview(review)
	lines := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(out, "Summary\n\n"+SuggestionsHeading))
	assert.Contains(t, lines, "### src/a.py")
	assert.Contains(t, lines, "```python")
	assert.Contains(t, lines, "x = 1")
	assert.Contains(t, lines, "y = 2")
	assert.NotContains(t, out, `\n`)
}

func TestAssembleReview_KeepsSuggestionOrder(t *testing.T) {
	review := domain.Review{
		Info: "",
		Suggestion: domain.Suggestions{
			{FilePath: "z.go", Code: "package z"},
			{FilePath: "a.ts", Code: "let a = 1"},
		},
	}

	out := AssembleReview(review)

	assert.True(t, strings.HasPrefix(out, SuggestionsHeading))
	assert.Less(t, strings.Index(out, "### z.go"), strings.Index(out, "### a.ts"))
	assert.Contains(t, out, "```text\npackage z\n```")
	assert.Contains(t, out, "```typescript\nlet a = 1\n```")
}

func TestAssembleReview_InfoOnly(t *testing.T) {
	assert.Equal(t, "Looks good", AssembleReview(domain.Review{Info: "Looks good"}))
	assert.Empty(t, AssembleReview(domain.Review{}))
}

func TestAssembleReview_LongerFenceForBackticks(t *testing.T) {
	review := domain.Review{
		Suggestion: domain.Suggestions{{FilePath: "doc.md", Code: "```go\nfmt.Println()\n```"}},
	}

	out := AssembleReview(review)

	assert.Contains(t, out, "````markdown\n```go\nfmt.Println()\n```\n````")
}

func TestParseReview(t *testing.T) {
	review, err := ParseReview(`{"info":"Summary","suggestion":{"src/a.py":"x = 1\\ny = 2"},"level":1}`)
	require.NoError(t, err)

	assert.Equal(t, "Summary", review.Info)
	require.Len(t, review.Suggestion, 1)
	assert.Equal(t, `x = 1\ny = 2`, review.Suggestion[0].Code)

	_, err = ParseReview(`{not json`)
	assert.ErrorIs(t, err, apperrors.ErrParseAnalysis)
}
