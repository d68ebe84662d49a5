package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions_KeepObjectOrder(t *testing.T) {
	raw := `{"info":"Summary","suggestion":{"z.go":"package z","a.py":"x = 1","m/k.ts":"let k"},"level":2}`

	var review Review
	require.NoError(t, json.Unmarshal([]byte(raw), &review))

	assert.Equal(t, "Summary", review.Info)
	require.NotNil(t, review.Level)
	assert.Equal(t, 2, *review.Level)
	assert.Equal(t, Suggestions{
		{FilePath: "z.go", Code: "package z"},
		{FilePath: "a.py", Code: "x = 1"},
		{FilePath: "m/k.ts", Code: "let k"},
	}, review.Suggestion)

	out, err := json.Marshal(review.Suggestion)
	require.NoError(t, err)
	assert.Equal(t, `{"z.go":"package z","a.py":"x = 1","m/k.ts":"let k"}`, string(out))
}

func TestSuggestions_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"array instead of object", `{"info":"x","suggestion":["a"]}`},
		{"non string code", `{"info":"x","suggestion":{"a.go":1}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var review Review
			assert.Error(t, json.Unmarshal([]byte(tc.raw), &review))
		})
	}
}

func TestSuggestions_NullAndMissing(t *testing.T) {
	var review Review
	require.NoError(t, json.Unmarshal([]byte(`{"info":"only","suggestion":null}`), &review))
	assert.Empty(t, review.Suggestion)

	review = Review{}
	require.NoError(t, json.Unmarshal([]byte(`{"info":"only"}`), &review))
	assert.Empty(t, review.Suggestion)
	assert.Nil(t, review.Level)
}
