package wiki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetadataBlock(t *testing.T) {
	t.Parallel()

	p := Parse("Hello", ".pub Posts\n.read all\n\n# Hello\n\nbody text\n")
	require.Equal(t, "Hello", p.Title)
	require.Equal(t, map[string]string{"pub": "Posts", "read": "all"}, p.Metadata)
	require.Equal(t, "\n# Hello\n\nbody text\n", p.Body)
	require.True(t, p.Published())
}

func TestParseBareKey(t *testing.T) {
	t.Parallel()

	p := Parse("Hello", ".pub\nbody\n")
	require.Equal(t, "", p.Metadata["pub"])
	require.True(t, p.Published())
}

func TestParseNoMetadata(t *testing.T) {
	t.Parallel()

	p := Parse("Home", "# Home\n")
	require.Empty(t, p.Metadata)
	require.Equal(t, "# Home\n", p.Body)
	require.False(t, p.Published())
}

func TestParseStopsAtFirstContentLine(t *testing.T) {
	t.Parallel()

	p := Parse("Mixed", ".read all\nplain line\n.pub Posts\n")
	require.Equal(t, map[string]string{"read": "all"}, p.Metadata)
	require.Equal(t, "plain line\n.pub Posts\n", p.Body, "metadata after content stays in the body")
	require.False(t, p.Published())
}

func TestRenderBodyMarkdown(t *testing.T) {
	t.Parallel()

	p := Parse("Hello", "# Heading\n\nSome *em* text.\n")
	out, err := RenderBody(p)
	require.NoError(t, err)
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "<em>em</em>")
}

func TestRenderBodySanitizes(t *testing.T) {
	t.Parallel()

	p := Parse("Sneaky", "hello <script>alert(1)</script> world\n")
	out, err := RenderBody(p)
	require.NoError(t, err)
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "hello")
}
