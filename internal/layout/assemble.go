// Package layout is the page composition engine of the site shell: a
// single master layout whose named slots concrete pages fill or
// extend, merged deterministically with context-driven chrome.
// Rendering is a pure function of its inputs; the engine holds no
// state across renders and never fails for a well-formed context.
package layout

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"ecogwiki.org/ecogwiki-web/internal/analytics"
	"ecogwiki.org/ecogwiki-web/internal/nav"
)

// scriptFiles is the fixed script set every page loads, referenced by
// name and served by the static asset collaborator.
var scriptFiles = []string{
	"/statics/js/base.js",
}

// Shell assembles full documents from a context and page overrides.
type Shell struct {
	registry *Registry
	urls     URLProvider
}

// NewShell builds a Shell around the given session URL provider, which
// must not be nil.
func NewShell(urls URLProvider) *Shell {
	return &Shell{registry: NewRegistry(), urls: urls}
}

// Render produces the final document for one page view. The only
// error condition is an override naming an unknown slot; every
// well-formed context renders, absent optional fields included.
// Identical inputs yield byte-identical output.
func (s *Shell) Render(ctx Context, overrides Overrides) ([]byte, error) {
	slots, err := s.registry.ResolveAll(overrides)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n")
	if c := slots[SlotHTMLClass]; c != "" {
		fmt.Fprintf(&b, "<html class=\"%s\">\n", template.HTMLEscapeString(string(c)))
	} else {
		b.WriteString("<html>\n")
	}

	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", template.HTMLEscapeString(string(slots[SlotTitle])))
	for _, css := range ctx.Service.CSSList {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n",
			template.HTMLEscapeString(versioned(css, ctx.AppVersion)))
	}
	b.WriteString(string(slots[SlotHead]))
	b.WriteString("</head>\n")

	if attrs := slots[SlotBodyAttrs]; attrs != "" {
		fmt.Fprintf(&b, "<body %s>\n", attrs)
	} else {
		b.WriteString("<body>\n")
	}
	b.WriteString(string(slots[SlotAfterBodyOpen]))

	fmt.Fprintf(&b, "<header data-topbar>\n<h1 data-service-title><a href=\"/Home\">%s</a></h1>\n",
		template.HTMLEscapeString(ctx.Service.Title))
	b.WriteString("<form data-search action=\"/sp.search\" method=\"get\">" +
		"<input type=\"search\" name=\"q\" placeholder=\"Search\"></form>\n")
	b.WriteString(s.sessionBlock(ctx))
	b.WriteString("</header>\n")

	b.WriteString(nav.Render(ctx.Service.Navigation, currentPath(ctx.RequestURL)))

	fmt.Fprintf(&b, "<main data-content>\n%s\n</main>\n", slots[SlotBody])

	fmt.Fprintf(&b, "<footer data-footer><p>%s</p></footer>\n",
		template.HTMLEscapeString(ctx.Service.Title))

	b.WriteString(s.instrumentation(ctx))
	b.WriteString("\n")
	for _, src := range scriptFiles {
		fmt.Fprintf(&b, "<script src=\"%s\"></script>\n",
			template.HTMLEscapeString(versioned(src, ctx.AppVersion)))
	}
	b.WriteString(string(slots[SlotBeforeBodyClose]))
	b.WriteString("</body>\n</html>\n")
	return b.Bytes(), nil
}

// instrumentation gates the analytics block on the environment: local
// development gets an inert stub, production the full parameterized
// snippet.
func (s *Shell) instrumentation(ctx Context) string {
	if ctx.Environment == EnvLocal {
		return analytics.Stub()
	}
	return analytics.Snippet(analytics.Params{
		AccountID:      ctx.Service.AnalyticsAccountID,
		Domain:         ctx.Service.Domain,
		ContentGroup:   ContentGroup(ctx.Page),
		AdminDimension: AdminDimension(ctx.User, ctx.Service.AdminEmail),
	})
}

// versioned appends the cache-busting token to a static resource path.
func versioned(path, version string) string {
	if version == "" {
		return path
	}
	return path + "?ver=" + url.QueryEscape(version)
}

// currentPath extracts the path component of the request URL for
// navigation active-state matching.
func currentPath(requestURL string) string {
	u, err := url.Parse(requestURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
