package processors

import (
	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// Ensure Identity implements the interface.
var _ driven.EventProcessor = (*Identity)(nil)

// Identity keeps every event and transforms none. It is the default
// processor for plain merges.
type Identity struct{}

// NewIdentity creates the identity processor.
func NewIdentity() *Identity {
	return &Identity{}
}

// Name returns the processor name.
func (*Identity) Name() string { return "identity" }

// Keep always returns true.
func (*Identity) Keep(_ *domain.Event) bool { return true }

// Transform always returns nil: the original event is emitted unchanged.
func (*Identity) Transform(_ *domain.Event) *domain.Event { return nil }
