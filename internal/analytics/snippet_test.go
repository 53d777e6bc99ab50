package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnippetParameters(t *testing.T) {
	t.Parallel()

	out := Snippet(Params{
		AccountID:      "UA-000000-1",
		Domain:         "wiki.example.com",
		ContentGroup:   "Wiki",
		AdminDimension: 1,
	})

	require.True(t, strings.HasPrefix(out, "<script>"))
	require.True(t, strings.HasSuffix(out, "</script>"))
	require.Contains(t, out, "ga('create', 'UA-000000-1', 'wiki.example.com');")
	require.Contains(t, out, "ga('set', 'contentGroup1', 'Wiki');")
	require.Contains(t, out, "ga('set', 'dimension1', '1');")
}

func TestSnippetSearchIntentSequence(t *testing.T) {
	t.Parallel()

	out := Snippet(Params{AccountID: "UA-000000-1"})

	// the search-intent dispatch and cookie expiry both target the cookie
	require.Contains(t, out, SearchCookie+"=([^;]*)")
	require.Contains(t, out, "ga('send', 'pageview', '/sp.search?q=' + encodeURIComponent(q));")
	require.Contains(t, out, SearchCookie+"=; path=/; expires=Thu, 01 Jan 1970 00:00:00 GMT")

	// conditional dispatch precedes the unconditional one
	searchAt := strings.Index(out, "/sp.search?q=")
	finalAt := strings.LastIndex(out, "ga('send', 'pageview');")
	require.Greater(t, finalAt, searchAt, "current-path pageview must dispatch after the search pageview")

	// cookie mutation only happens inside the non-empty-query branch
	require.Contains(t, out, "if (q !== '')")
}

func TestSnippetDeterministic(t *testing.T) {
	t.Parallel()

	p := Params{AccountID: "UA-1", Domain: "d", ContentGroup: "Post", AdminDimension: 2}
	require.Equal(t, Snippet(p), Snippet(p))
}

func TestSnippetEscapesParameters(t *testing.T) {
	t.Parallel()

	out := Snippet(Params{AccountID: "UA-1", Domain: "evil'); alert(1); //"})
	require.NotContains(t, out, "'evil');", "quotes in parameters must not break out of the string literal")
	require.Contains(t, out, `evil\')`)
}

func TestStubIsInert(t *testing.T) {
	t.Parallel()

	out := Stub()
	require.Contains(t, out, "window.ga = window.ga || function() {};")
	require.NotContains(t, out, "google-analytics.com")
	require.NotContains(t, out, "pageview")
	require.NotContains(t, out, SearchCookie, "the stub neither reads nor mutates cookies")
}
