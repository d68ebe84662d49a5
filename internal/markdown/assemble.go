package markdown

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
)

// SuggestionsHeading introduces the per-file suggestions of a review.
const SuggestionsHeading = "## 修改建议"

// ParseReview decodes a serialized review.
func ParseReview(raw string) (domain.Review, error) {
	var review domain.Review

	if err := json.Unmarshal([]byte(raw), &review); err != nil {
		return domain.Review{}, fmt.Errorf("%w: %w", apperrors.ErrParseAnalysis, err)
	}

	return review, nil
}

// AssembleReview builds the Markdown document shown for a review: the
// summary, then one fenced block per suggested file.
func AssembleReview(review domain.Review) string {
	var b strings.Builder

	b.WriteString(review.Info)

	if len(review.Suggestion) == 0 {
		return b.String()
	}

	if review.Info != "" {
		b.WriteString("\n\n")
	}

	b.WriteString(SuggestionsHeading)
	b.WriteString("\n")

	for _, s := range review.Suggestion {
		code := strings.TrimSuffix(UnescapeSuggestion(s.Code), "\n")
		fence := codeFence(code)

		fmt.Fprintf(&b, "\n### %s\n\n%s%s\n%s\n%s\n", s.FilePath, fence, Language(s.FilePath), code, fence)
	}

	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run in code.
func codeFence(code string) string {
	longest, run := 0, 0

	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)

			continue
		}

		run = 0
	}

	return strings.Repeat("`", max(3, longest+1))
}
