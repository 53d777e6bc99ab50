package nav

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseNav(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestRenderPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := parseNav(t, Render([]Entry{
		{Name: "Home", URL: "/Home"},
		{Name: "Changes", URL: "/sp.changes"},
		{Name: "About", URL: "/About"},
	}, "/"))

	var names []string
	doc.Find("nav li a").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	require.Equal(t, []string{"Home", "Changes", "About"}, names)
}

func TestRenderShortcutTriplet(t *testing.T) {
	t.Parallel()

	doc := parseNav(t, Render([]Entry{
		{Name: "Changes", URL: "/sp.changes", ShortcutKey: "C"},
		{Name: "About", URL: "/About"},
	}, "/"))

	withKey := doc.Find("a[href='/sp.changes']")
	require.Equal(t, "shortcut-C", withKey.AttrOr("id", ""))
	require.True(t, withKey.HasClass("shortcut"))
	require.Equal(t, "C", withKey.AttrOr("data-shortcut", ""))

	withoutKey := doc.Find("a[href='/About']")
	for _, attr := range []string{"id", "class", "data-shortcut"} {
		_, ok := withoutKey.Attr(attr)
		require.False(t, ok, "attribute %s must be omitted, never empty", attr)
	}
}

func TestRenderStyleAttribute(t *testing.T) {
	t.Parallel()

	doc := parseNav(t, Render([]Entry{
		{Name: "Donate", URL: "/Donate", Style: "color: red"},
		{Name: "Home", URL: "/Home"},
	}, "/"))

	require.Equal(t, "color: red", doc.Find("a[href='/Donate']").AttrOr("style", ""))
	_, ok := doc.Find("a[href='/Home']").Attr("style")
	require.False(t, ok)
}

func TestRenderDuplicateShortcutsDoNotFail(t *testing.T) {
	t.Parallel()

	doc := parseNav(t, Render([]Entry{
		{Name: "Changes", URL: "/sp.changes", ShortcutKey: "C"},
		{Name: "Contact", URL: "/Contact", ShortcutKey: "C"},
	}, "/"))
	require.Equal(t, 2, doc.Find("a[data-shortcut='C']").Length(), "duplicates render as-is")
}

func TestRenderActiveState(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "Home", URL: "/Home"},
		{Name: "Changes", URL: "/sp.changes"},
	}

	doc := parseNav(t, Render(entries, "/Home"))
	require.True(t, doc.Find("a[href='/Home']").HasClass("active"))
	require.False(t, doc.Find("a[href='/sp.changes']").HasClass("active"))

	doc = parseNav(t, Render(entries, "/Home/sub"))
	require.True(t, doc.Find("a[href='/Home']").HasClass("active"), "prefix boundary counts as active")

	doc = parseNav(t, Render(entries, "/Homestead"))
	require.False(t, doc.Find("a[href='/Home']").HasClass("active"), "bare prefix does not")
}

func TestRenderEscapesNames(t *testing.T) {
	t.Parallel()

	markup := Render([]Entry{{Name: "A & B", URL: "/a?b=1&c=2"}}, "/")
	require.Contains(t, markup, "A &amp; B")
	require.NotContains(t, markup, "\"/a?b=1&c=2\"")
}
