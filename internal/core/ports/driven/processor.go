package driven

import (
	"github.com/icstools/icsmerge/internal/core/domain"
)

// EventProcessor is the per-event filter/transform pair applied once per
// retained event during final assembly. Keep is evaluated first; when it
// returns false the event is dropped and Transform is never called.
//
// Implementations must not mutate the event they receive: Transform returns
// a replacement event, or nil to emit the original unchanged.
type EventProcessor interface {
	// Name returns the processor name for logging and registry lookup.
	Name() string

	// Keep reports whether the event survives into the output.
	Keep(ev *domain.Event) bool

	// Transform returns a replacement for the event, or nil to keep the
	// original as-is.
	Transform(ev *domain.Event) *domain.Event
}
