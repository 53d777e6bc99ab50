package layout

import (
	"errors"
	"fmt"
)

// Slot names an insertion point the master layout exposes to pages.
type Slot string

const (
	SlotHTMLClass       Slot = "htmlClass"
	SlotTitle           Slot = "title"
	SlotHead            Slot = "head"
	SlotBodyAttrs       Slot = "bodyAttrs"
	SlotAfterBodyOpen   Slot = "afterBodyOpen"
	SlotBody            Slot = "body"
	SlotBeforeBodyClose Slot = "beforeBodyClose"
)

// Content is a markup fragment supplied by a page or by the layout
// itself. Fragments are trusted as-is; the two text-only slots (title)
// are escaped by the assembler, not here. Callers control whitespace.
type Content string

// Overrides maps slots to page-supplied content. A missing key means
// the page did not touch that slot.
type Overrides map[Slot]Content

// MergePolicy governs how page content combines with the layout's
// default content for a slot.
type MergePolicy int

const (
	// Replace substitutes the page content for the default when present.
	Replace MergePolicy = iota
	// Append concatenates page content after the fixed default, which
	// always renders regardless of what the page supplies.
	Append
)

// ErrUnknownSlot signals a caller contract violation: an override was
// supplied for a slot the layout does not expose.
var ErrUnknownSlot = errors.New("layout: unknown slot")

// headDefault is the fixed head boilerplate every page carries: the
// alternate Atom feed for published posts.
const headDefault Content = "<link rel=\"alternate\" type=\"application/atom+xml\" title=\"Posts\" href=\"/sp.posts?format=atom\">\n"

type slotSpec struct {
	policy MergePolicy
	def    Content
}

// Registry declares the slots of the master layout, their merge
// policies, and their default content.
type Registry struct {
	specs map[Slot]slotSpec
}

// NewRegistry returns the slot set of the master layout.
func NewRegistry() *Registry {
	return &Registry{specs: map[Slot]slotSpec{
		SlotHTMLClass:       {policy: Replace},
		SlotTitle:           {policy: Replace},
		SlotHead:            {policy: Append, def: headDefault},
		SlotBodyAttrs:       {policy: Replace},
		SlotAfterBodyOpen:   {policy: Replace},
		SlotBody:            {policy: Replace},
		SlotBeforeBodyClose: {policy: Append},
	}}
}

// DefaultsFor returns the layout's fixed content for a slot. Total:
// slots without boilerplate yield the empty fragment.
func (r *Registry) DefaultsFor(s Slot) Content {
	return r.specs[s].def
}

// Resolve merges the page's content for one slot against the slot's
// default per its policy. Resolution is independent per slot; no slot
// sees another slot's override. Unknown slots are a programming error
// and fail fast with ErrUnknownSlot.
func (r *Registry) Resolve(s Slot, overrides Overrides) (Content, error) {
	spec, ok := r.specs[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
	}
	override, present := overrides[s]
	switch spec.policy {
	case Append:
		return spec.def + override, nil
	default:
		if present {
			return override, nil
		}
		return spec.def, nil
	}
}

// ResolveAll resolves every declared slot. Overrides naming a slot the
// layout does not expose reject the whole set.
func (r *Registry) ResolveAll(overrides Overrides) (map[Slot]Content, error) {
	for s := range overrides {
		if _, ok := r.specs[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, s)
		}
	}
	resolved := make(map[Slot]Content, len(r.specs))
	for s := range r.specs {
		c, err := r.Resolve(s, overrides)
		if err != nil {
			return nil, err
		}
		resolved[s] = c
	}
	return resolved, nil
}
