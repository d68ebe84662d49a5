// Package markdown turns analysis results and reviews into HTML: it
// assembles review documents, resolves file references in links into
// GitLab source links and marks diagram blocks for post-rendering.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	// DiagramLanguage is the fenced code language reserved for diagrams.
	DiagramLanguage = "mermaid"
	// DiagramClass marks diagram source blocks in the rendered HTML.
	DiagramClass = "language-mermaid"
	// ReferenceClass marks links produced from file references.
	ReferenceClass = "file-reference"
)

// Renderer converts GitHub-flavoured Markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(util.Prioritized(&codeBlockRenderer{}, 100)),
			),
		),
	}
}

// Render converts src to HTML. Links whose text names a source file are
// rewritten to point at that file under links.
func (r *Renderer) Render(src string, links domain.SourceLinks) (string, error) {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))

	rewriteLinks(doc, source, links)

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return buf.String(), nil
}

func rewriteLinks(doc ast.Node, source []byte, links domain.SourceLinks) {
	var found []*ast.Link

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := n.(*ast.Link); ok && entering {
			found = append(found, link)
		}

		return ast.WalkContinue, nil
	})

	for _, link := range found {
		href := string(link.Destination)

		if links.WebURL != "" {
			if ref, ok := ResolveReference(linkText(link, source), href); ok {
				link.Destination = []byte(SourceURL(links, ref))
				link.SetAttributeString("class", []byte(ReferenceClass))
				link.SetAttributeString("target", []byte("_blank"))
				link.SetAttributeString("rel", []byte("noopener noreferrer"))
				link.RemoveChildren(link)
				link.AppendChild(link, ast.NewString([]byte(ReferenceLabel(ref))))

				continue
			}
		}

		if strings.TrimSpace(href) == "" {
			unwrap(link)
		}
	}
}

// linkText returns the link text as written in source. Emphasis parsed
// inside the text keeps its delimiters, so __init__ stays intact.
func linkText(link *ast.Link, source []byte) string {
	start, stop := -1, -1

	_ = ast.Walk(link, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			if start < 0 || t.Segment.Start < start {
				start = t.Segment.Start
			}

			if t.Segment.Stop > stop {
				stop = t.Segment.Stop
			}
		}

		return ast.WalkContinue, nil
	})

	if start < 0 || stop <= start {
		return inlineText(link, source)
	}

	raw := strings.ReplaceAll(string(source[start:stop]), "\n", " ")

	return string(util.UnescapePunctuations([]byte(raw)))
}

// inlineText concatenates the text leaves below n.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))

			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineText(c, source))
		}
	}

	return b.String()
}

// unwrap replaces n by its children.
func unwrap(n ast.Node) {
	parent := n.Parent()
	if parent == nil {
		return
	}

	for c := n.FirstChild(); c != nil; {
		next := c.NextSibling()
		parent.InsertBefore(parent, n, c)
		c = next
	}

	parent.RemoveChild(parent, n)
}

// codeBlockRenderer renders fenced code blocks; diagram blocks become marked
// containers holding the raw diagram source.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)
	lang := string(n.Language(source))

	var body bytes.Buffer

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		body.Write(seg.Value(source))
	}

	if lang == DiagramLanguage {
		_, _ = w.WriteString(`<div class="` + DiagramClass + `">`)
		_, _ = w.Write(util.EscapeHTML(body.Bytes()))
		_, _ = w.WriteString("</div>\n")

		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString("<pre><code")

	if lang != "" {
		_, _ = w.WriteString(` class="language-`)
		_, _ = w.Write(util.EscapeHTML([]byte(lang)))
		_, _ = w.WriteString(`"`)
	}

	_, _ = w.WriteString(">")
	_, _ = w.Write(util.EscapeHTML(bytes.TrimSuffix(body.Bytes(), []byte("\n"))))
	_, _ = w.WriteString("</code></pre>\n")

	return ast.WalkSkipChildren, nil
}
