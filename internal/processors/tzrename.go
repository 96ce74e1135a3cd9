package processors

import (
	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Ensure TimezoneRename implements the interface.
var _ driven.EventProcessor = (*TimezoneRename)(nil)

// TimezoneRename rewrites TZID parameter values on every event property:
// any parameter value equal to from becomes to. This is a pure relabeling
// for mislabeled source data; the underlying date/time values are never
// touched, so it is not a wall-clock conversion.
type TimezoneRename struct {
	from string
	to   string
}

// NewTimezoneRename creates the timezone relabeling processor.
func NewTimezoneRename(from, to string) *TimezoneRename {
	return &TimezoneRename{from: from, to: to}
}

// Name returns the processor name.
func (*TimezoneRename) Name() string { return "tzrename" }

// Keep always returns true.
func (*TimezoneRename) Keep(_ *domain.Event) bool { return true }

// Transform returns a copy of the event with matching TZID parameter values
// rewritten. Everything else passes through unchanged.
func (r *TimezoneRename) Transform(ev *domain.Event) *domain.Event {
	out := ev.Clone()
	for i := range out.Properties {
		vs, ok := out.Properties[i].Params[domain.ParamTZID]
		if !ok {
			continue
		}
		for j, v := range vs {
			if v == r.from {
				vs[j] = r.to
			}
		}
	}
	return out
}
