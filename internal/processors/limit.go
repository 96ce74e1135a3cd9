package processors

import (
	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Ensure Limit implements the interface.
var _ driven.EventProcessor = (*Limit)(nil)

// Limit keeps only the first n retained events, regardless of UID and
// across document boundaries, then drops every later one. The only
// stateful processor: one Limit value covers one run.
type Limit struct {
	remaining int
}

// NewLimit creates a limit processor that keeps at most n events.
func NewLimit(n int) *Limit {
	return &Limit{remaining: n}
}

// Name returns the processor name.
func (*Limit) Name() string { return "limit" }

// Keep returns true for the first n events, then false forever.
func (l *Limit) Keep(_ *domain.Event) bool {
	if l.remaining > 0 {
		l.remaining--
		return true
	}
	return false
}

// Transform always returns nil: Limit never rewrites events.
func (*Limit) Transform(_ *domain.Event) *domain.Event { return nil }
