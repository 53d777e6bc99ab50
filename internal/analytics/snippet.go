// Package analytics emits the client-side instrumentation block the
// page shell embeds at the bottom of every document. The block is a
// declarative description of client behavior: the engine's job ends at
// producing correct parameters and the dispatch sequence, never at
// executing it.
package analytics

import (
	"fmt"
	"html/template"
	"strings"
)

// SearchCookie is the cookie the client-side search form stores the
// last query in. The instrumentation block consumes and deletes it.
const SearchCookie = "ecogwiki_search_query"

// Params parameterize the instrumentation block for one page view.
type Params struct {
	AccountID string
	Domain    string
	// ContentGroup tags the page view: "Post", "Wiki", or "System".
	ContentGroup string
	// AdminDimension is 0 for anonymous, 1 for signed-in, 2 for admin.
	AdminDimension int
}

// loader bootstraps the analytics.js client and its ga() queue.
const loader = `(function(i,s,o,g,r,a,m){i['GoogleAnalyticsObject']=r;i[r]=i[r]||function(){
(i[r].q=i[r].q||[]).push(arguments)},i[r].l=1*new Date();a=s.createElement(o),
m=s.getElementsByTagName(o)[0];a.async=1;a.src=g;m.parentNode.insertBefore(a,m)
})(window,document,'script','//www.google-analytics.com/analytics.js','ga');
`

// searchIntent consumes the search-intent cookie exactly once per page
// load: a non-empty query (after trimming) dispatches a synthetic
// pageview for the search path and expires the cookie to epoch; an
// absent or empty cookie dispatches nothing and mutates nothing.
const searchIntent = `(function() {
	var m = document.cookie.match(/(?:^|;\s*)` + SearchCookie + `=([^;]*)/);
	var q = m ? decodeURIComponent(m[1]).replace(/^\s+|\s+$/g, '') : '';
	if (q !== '') {
		ga('send', 'pageview', '/sp.search?q=' + encodeURIComponent(q));
		document.cookie = '` + SearchCookie + `=; path=/; expires=Thu, 01 Jan 1970 00:00:00 GMT';
	}
})();
`

// Snippet returns the full instrumentation block for production pages.
// Identical params always yield identical output.
func Snippet(p Params) string {
	var b strings.Builder
	b.WriteString("<script>\n")
	b.WriteString(loader)
	fmt.Fprintf(&b, "ga('create', '%s', '%s');\n",
		template.JSEscapeString(p.AccountID), template.JSEscapeString(p.Domain))
	fmt.Fprintf(&b, "ga('set', 'contentGroup1', '%s');\n", template.JSEscapeString(p.ContentGroup))
	fmt.Fprintf(&b, "ga('set', 'dimension1', '%d');\n", p.AdminDimension)
	b.WriteString(searchIntent)
	b.WriteString("ga('send', 'pageview');\n")
	b.WriteString("</script>")
	return b.String()
}

// Stub returns an inert block for local development. It preserves the
// ga() call-site API so page scripts keep working with no dispatches.
func Stub() string {
	return "<script>\nwindow.ga = window.ga || function() {};\n</script>"
}
