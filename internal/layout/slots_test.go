package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsForIsTotal(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, s := range []Slot{SlotHTMLClass, SlotTitle, SlotBodyAttrs, SlotAfterBodyOpen, SlotBody, SlotBeforeBodyClose} {
		require.Empty(t, r.DefaultsFor(s), "slot %s should have no boilerplate", s)
	}
	require.Contains(t, string(r.DefaultsFor(SlotHead)), "application/atom+xml", "head boilerplate should carry the feed link")
}

func TestResolveReplacePolicy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	got, err := r.Resolve(SlotBody, Overrides{SlotBody: "<p>hello</p>"})
	require.NoError(t, err)
	require.Equal(t, Content("<p>hello</p>"), got, "override should replace with no default leakage")

	got, err = r.Resolve(SlotBody, Overrides{})
	require.NoError(t, err)
	require.Empty(t, got, "absent override should fall back to the (empty) default")

	got, err = r.Resolve(SlotTitle, Overrides{SlotTitle: ""})
	require.NoError(t, err)
	require.Empty(t, got, "an explicitly empty override is still an override")
}

func TestResolveAppendPolicy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	got, err := r.Resolve(SlotHead, Overrides{SlotHead: "<meta name=\"x\">"})
	require.NoError(t, err)
	require.Equal(t, r.DefaultsFor(SlotHead)+"<meta name=\"x\">", got, "append renders default first, override second")

	got, err = r.Resolve(SlotHead, Overrides{})
	require.NoError(t, err)
	require.Equal(t, r.DefaultsFor(SlotHead), got, "absent override leaves the boilerplate alone")
}

func TestResolveUnknownSlotFailsFast(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, err := r.Resolve(Slot("sidebar"), Overrides{})
	require.ErrorIs(t, err, ErrUnknownSlot)

	_, err = r.ResolveAll(Overrides{Slot("sidebar"): "x"})
	require.ErrorIs(t, err, ErrUnknownSlot, "overrides naming unknown slots must reject the whole set")
}

func TestResolveAllCoversEverySlot(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	resolved, err := r.ResolveAll(Overrides{SlotTitle: "T"})
	require.NoError(t, err)
	require.Len(t, resolved, 7)
	require.Equal(t, Content("T"), resolved[SlotTitle])
}
