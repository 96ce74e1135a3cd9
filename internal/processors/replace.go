package processors

import (
	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Ensure ReplaceProperty implements the interface.
var _ driven.EventProcessor = (*ReplaceProperty)(nil)

// ReplaceProperty drops every instance of one property and appends exactly
// one parameterless instance with the given value. Zero, one or many
// original instances all collapse to one.
type ReplaceProperty struct {
	prop  string
	value string
}

// NewReplaceProperty creates the replace processor.
func NewReplaceProperty(prop, value string) *ReplaceProperty {
	return &ReplaceProperty{prop: prop, value: value}
}

// Name returns the processor name.
func (*ReplaceProperty) Name() string { return "replace" }

// Keep always returns true.
func (*ReplaceProperty) Keep(_ *domain.Event) bool { return true }

// Transform returns a copy of the event with the property collapsed to a
// single instance. All other properties keep their order and parameters.
func (r *ReplaceProperty) Transform(ev *domain.Event) *domain.Event {
	out := ev.Clone()
	filtered := out.Properties[:0]
	for _, p := range out.Properties {
		if p.Name != r.prop {
			filtered = append(filtered, p)
		}
	}
	out.Properties = append(filtered, domain.Property{Name: r.prop, Value: r.value})
	return out
}
