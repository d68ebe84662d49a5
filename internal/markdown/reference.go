package markdown

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/YusovID/review-dashboard/internal/domain"
)

var (
	// path[:start[-end]], optionally wrapped in backticks.
	bareReferencePattern = regexp.MustCompile("^`?([^:`]+)(?::(\\d+(?:-\\d+)?))?`?$")
	// path:start[-end], the line range is mandatory.
	rangedReferencePattern = regexp.MustCompile("^`?([^:`]+):(\\d+(?:-\\d+)?)`?$")
)

// ResolveReference decides whether a link with the given text and href
// points at a source file. Without an href the text alone must look like a
// path; with an href the text must carry a line range and agree with the href.
func ResolveReference(text, href string) (domain.FileReference, bool) {
	text = strings.TrimSpace(text)
	href = strings.TrimSpace(href)

	if href == "" {
		m := bareReferencePattern.FindStringSubmatch(text)
		if m == nil {
			return domain.FileReference{}, false
		}

		path, rng := m[1], parseLineRange(m[2])
		if rng == nil && !strings.ContainsAny(path, "./") {
			return domain.FileReference{}, false
		}

		return domain.FileReference{FilePath: path, LineRange: rng}, true
	}

	m := rangedReferencePattern.FindStringSubmatch(text)
	if m == nil {
		return domain.FileReference{}, false
	}

	path := m[1]
	if !strings.Contains(path, href) && !strings.Contains(href, strings.TrimPrefix(path, "./")) {
		return domain.FileReference{}, false
	}

	if !isAbsoluteURL(href) {
		path = href
	}

	return domain.FileReference{FilePath: path, LineRange: parseLineRange(m[2])}, true
}

func parseLineRange(s string) *domain.LineRange {
	if s == "" {
		return nil
	}

	startStr, endStr, hasEnd := strings.Cut(s, "-")

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil
	}

	rng := &domain.LineRange{Start: start}

	if hasEnd {
		if end, err := strconv.Atoi(endStr); err == nil {
			rng.End = end
		}
	}

	return rng
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// SourceURL builds the GitLab blob URL of ref.
func SourceURL(links domain.SourceLinks, ref domain.FileReference) string {
	path := strings.TrimLeft(strings.TrimPrefix(ref.FilePath, "./"), "/")

	var b strings.Builder

	b.WriteString(strings.TrimRight(links.WebURL, "/"))
	b.WriteString("/-/blob/")
	b.WriteString(links.Ref)
	b.WriteString("/")
	b.WriteString(path)

	if ref.LineRange != nil {
		fmt.Fprintf(&b, "#L%d", ref.LineRange.Start)

		if ref.LineRange.End > 0 {
			fmt.Fprintf(&b, "-%d", ref.LineRange.End)
		}
	}

	return b.String()
}

// ReferenceLabel is the visible text of a rendered reference.
func ReferenceLabel(ref domain.FileReference) string {
	if ref.LineRange == nil {
		return ref.FilePath
	}

	if ref.LineRange.End > 0 {
		return fmt.Sprintf("%s:%d-%d", ref.FilePath, ref.LineRange.Start, ref.LineRange.End)
	}

	return fmt.Sprintf("%s:%d", ref.FilePath, ref.LineRange.Start)
}
