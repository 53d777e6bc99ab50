// Package seo renders per-page metadata as head-slot markup.
package seo

import (
	"fmt"
	"html/template"
	"strings"
)

// Meta holds the optional metadata a page contributes to the document
// head. Empty fields are omitted from the markup.
type Meta struct {
	Description string
	OGTitle     string
	OGType      string // "article" for posts, "website" otherwise
	OGURL       string
}

// HeadFragment renders the metadata as a head fragment to be appended
// after the layout's fixed head boilerplate.
func (m Meta) HeadFragment() string {
	var b strings.Builder
	writeMeta(&b, "name", "description", m.Description)
	writeMeta(&b, "property", "og:title", m.OGTitle)
	writeMeta(&b, "property", "og:type", m.OGType)
	writeMeta(&b, "property", "og:url", m.OGURL)
	return b.String()
}

func writeMeta(b *strings.Builder, attr, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<meta %s=\"%s\" content=\"%s\">\n",
		attr, key, template.HTMLEscapeString(value))
}
