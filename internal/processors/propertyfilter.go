package processors

import (
	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Ensure PropertyFilter implements the interface.
var _ driven.EventProcessor = (*PropertyFilter)(nil)

// PropertyFilter removes or keeps event properties by name. The two CLI
// operations "remove" and "keep" are the two polarities of this single
// processor. Property order and the parameters of surviving properties are
// preserved.
type PropertyFilter struct {
	names map[string]struct{}
	keep  bool
}

// NewRemoveProperties creates a filter that drops every listed property.
func NewRemoveProperties(names []string) *PropertyFilter {
	return newPropertyFilter(names, false)
}

// NewKeepProperties creates a filter that drops everything except the
// listed properties.
func NewKeepProperties(names []string) *PropertyFilter {
	return newPropertyFilter(names, true)
}

func newPropertyFilter(names []string, keep bool) *PropertyFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &PropertyFilter{names: set, keep: keep}
}

// Name returns the processor name.
func (f *PropertyFilter) Name() string {
	if f.keep {
		return "keep"
	}
	return "remove"
}

// Keep always returns true; filtering happens at the property level.
func (f *PropertyFilter) Keep(_ *domain.Event) bool { return true }

// Transform returns a copy of the event with only the retained properties.
func (f *PropertyFilter) Transform(ev *domain.Event) *domain.Event {
	out := ev.Clone()
	filtered := out.Properties[:0]
	for _, p := range out.Properties {
		if f.retain(p.Name) {
			filtered = append(filtered, p)
		}
	}
	out.Properties = filtered
	return out
}

func (f *PropertyFilter) retain(name string) bool {
	_, listed := f.names[name]
	if f.keep {
		return listed
	}
	return !listed
}
