// Package diagram renders diagram source blocks found in rendered analysis
// HTML. Blocks are processed one at a time and a broken diagram only
// affects its own block.
package diagram

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// FailureMessage heads the inline notice of a block that failed to render.
	FailureMessage = "图表渲染失败"

	errorClass = "diagram-error"

	// processedAttr marks a block that has been attempted, whether or not it
	// rendered. Marked blocks are never rendered again.
	processedAttr = "data-processed"
)

var blocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "diagram_blocks_total",
		Help: "Diagram blocks processed by the post-renderer, by result",
	},
	[]string{"result"},
)

// Renderer turns diagram source into SVG markup.
type Renderer interface {
	Render(ctx context.Context, id, source string) (string, error)
}

// Result is the outcome of one post-rendering pass.
type Result struct {
	HTML     string
	Rendered int
	Failed   int
	Skipped  int
}

// PostRenderer finds diagram blocks in an HTML fragment and replaces their
// content with rendered diagrams.
type PostRenderer struct {
	renderer Renderer
	settle   time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewPostRenderer(renderer Renderer, settle time.Duration, log *slog.Logger) *PostRenderer {
	return &PostRenderer{
		renderer: renderer,
		settle:   settle,
		log:      log,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Process waits for the settling delay, then renders every diagram block of
// fragment in document order. Per-block failures are reported inline; only
// context cancellation aborts the pass.
func (p *PostRenderer) Process(ctx context.Context, fragment string) (Result, error) {
	const op = "internal.diagram.Process"

	if !strings.Contains(fragment, markdown.DiagramClass) {
		return Result{HTML: fragment}, nil
	}

	if p.settle > 0 {
		timer := time.NewTimer(p.settle)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return Result{}, fmt.Errorf("%s: parse html: %w", op, err)
	}

	for _, n := range nodes {
		container.AppendChild(n)
	}

	res := Result{}

	for _, block := range findBlocks(container) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		source := textContent(block)
		if strings.TrimSpace(source) == "" {
			res.Skipped++
			blocksTotal.WithLabelValues("skipped").Inc()

			continue
		}

		id := "diagram-" + strings.ToLower(p.newID())
		setAttr(block, "id", id)
		setAttr(block, processedAttr, "true")

		svg, err := p.renderer.Render(ctx, id, source)
		if err == nil {
			err = replaceWithMarkup(block, svg)
		}

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Result{}, ctxErr
			}

			p.log.Warn("diagram render failed", slog.String("op", op), slog.String("block_id", id), sl.Err(err))
			replaceWithNotice(block, err)

			res.Failed++
			blocksTotal.WithLabelValues("failed").Inc()

			continue
		}

		res.Rendered++
		blocksTotal.WithLabelValues("rendered").Inc()
	}

	var b strings.Builder

	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return Result{}, fmt.Errorf("%s: render html: %w", op, err)
		}
	}

	res.HTML = b.String()

	return res, nil
}

func (p *PostRenderer) newID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return ulid.MustNew(ulid.Now(), p.entropy).String()
}

func findBlocks(root *html.Node) []*html.Node {
	var blocks []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, markdown.DiagramClass) {
			if !hasAttr(n, processedAttr) {
				blocks = append(blocks, n)
			}

			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return blocks
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}

	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}

	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)

	return b.String()
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

func replaceWithMarkup(block *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), block)
	if err != nil {
		return fmt.Errorf("parse rendered diagram: %w", err)
	}

	removeChildren(block)

	for _, n := range nodes {
		block.AppendChild(n)
	}

	return nil
}

func replaceWithNotice(block *html.Node, renderErr error) {
	removeChildren(block)

	notice := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: errorClass}},
	}

	msg := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	msg.AppendChild(&html.Node{Type: html.TextNode, Data: FailureMessage})

	detail := &html.Node{Type: html.ElementNode, Data: "pre", DataAtom: atom.Pre}
	detail.AppendChild(&html.Node{Type: html.TextNode, Data: renderErr.Error()})

	notice.AppendChild(msg)
	notice.AppendChild(detail)
	block.AppendChild(notice)
}
