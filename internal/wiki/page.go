// Package wiki parses page sources and renders their bodies. A page
// source starts with an optional metadata block of ".key value" lines;
// the rest is markdown.
package wiki

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Page is one parsed page source.
type Page struct {
	Title    string
	Metadata map[string]string
	Body     string
}

// Published reports whether the page carries the "pub" metadata key,
// which marks it as a blog post.
func (p Page) Published() bool {
	_, ok := p.Metadata["pub"]
	return ok
}

// Parse splits the leading metadata block from the markdown body.
// Metadata lines start with a dot: ".pub Posts", ".read all". A key
// with no value is legal (".pub" alone publishes under the default
// title). The block ends at the first non-metadata line.
func Parse(title, source string) Page {
	p := Page{Title: title, Metadata: map[string]string{}}
	rest := source
	for rest != "" {
		line, tail, _ := strings.Cut(rest, "\n")
		trimmed := strings.TrimRight(line, "\r")
		if !strings.HasPrefix(trimmed, ".") || len(trimmed) < 2 {
			break
		}
		key, value, _ := strings.Cut(trimmed[1:], " ")
		if key == "" {
			break
		}
		p.Metadata[key] = strings.TrimSpace(value)
		rest = tail
	}
	p.Body = rest
	return p
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderBody converts the markdown body into sanitized HTML suitable
// for the layout's body slot.
func RenderBody(p Page) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(p.Body), &buf); err != nil {
		return "", fmt.Errorf("render %s: %w", p.Title, err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}
