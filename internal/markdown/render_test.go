package markdown

import (
	"testing"

	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLinks = domain.SourceLinks{WebURL: "https://gitlab.example.com/g/p", Ref: "main"}

func TestRenderer_FileReferences(t *testing.T) {
	r := NewRenderer()

	testCases := []struct {
		name     string
		src      string
		contains []string
		absent   []string
	}{
		{
			name: "Reference without href",
			src:  "See [`src/a.go:3-5`]() for details.",
			contains: []string{
				`<a href="https://gitlab.example.com/g/p/-/blob/main/src/a.go#L3-5"`,
				`class="file-reference"`,
				`target="_blank"`,
				`>src/a.go:3-5</a>`,
			},
		},
		{
			name: "Reference with matching href",
			src:  "[a.go:7](internal/a.go)",
			contains: []string{
				`href="https://gitlab.example.com/g/p/-/blob/main/internal/a.go#L7"`,
				`>internal/a.go:7</a>`,
			},
		},
		{
			name: "Reference whose path looks like emphasis",
			src:  "[src/__init__.py:3]()",
			contains: []string{
				`href="https://gitlab.example.com/g/p/-/blob/main/src/__init__.py#L3"`,
				`>src/__init__.py:3</a>`,
			},
			absent: []string{"<strong>", "src/init.py"},
		},
		{
			name: "Reference with escaped underscores",
			src:  "[src/\\_\\_init\\_\\_.py:3]()",
			contains: []string{
				`href="https://gitlab.example.com/g/p/-/blob/main/src/__init__.py#L3"`,
			},
		},
		{
			name:     "Ordinary link",
			src:      "[docs](https://example.com/docs)",
			contains: []string{`<a href="https://example.com/docs">docs</a>`},
			absent:   []string{"file-reference"},
		},
		{
			name:     "Plain word without href becomes text",
			src:      "Read the [overview]() first.",
			contains: []string{"<p>Read the overview first.</p>"},
			absent:   []string{"<a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := r.Render(tc.src, testLinks)
			require.NoError(t, err)

			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}

			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_NoLinkContext(t *testing.T) {
	out, err := NewRenderer().Render("[src/a.go:3]()", domain.SourceLinks{})
	require.NoError(t, err)

	assert.Equal(t, "<p>src/a.go:3</p>\n", out)
}

func TestRenderer_CodeBlocks(t *testing.T) {
	src := "```mermaid\ngraph TD\n  A-->B\n```\n\n```go\nfmt.Println(\"<hi>\")\n```\n"

	out, err := NewRenderer().Render(src, testLinks)
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="language-mermaid">graph TD
  A--&gt;B
</div>`)
	assert.Contains(t, out, `<pre><code class="language-go">fmt.Println(&quot;&lt;hi&gt;&quot;)</code></pre>`)
}

func TestRenderer_AssembledReview(t *testing.T) {
	md := AssembleReview(domain.Review{
		Info:       "Summary with [`src/a.py:1`]()",
		Suggestion: domain.Suggestions{{FilePath: "src/a.py", Code: `x = 1\ny = 2`}},
	})

	out, err := NewRenderer().Render(md, testLinks)
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>修改建议</h2>")
	assert.Contains(t, out, "<h3>src/a.py</h3>")
	assert.Contains(t, out, "<pre><code class=\"language-python\">x = 1\ny = 2</code></pre>")
	assert.Contains(t, out, "/-/blob/main/src/a.py#L1")
}
