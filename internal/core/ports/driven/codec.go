package driven

import (
	"github.com/icstools/icsmerge/internal/core/domain"
)

// Codec converts between the iCalendar wire format and the domain model.
// The core treats the format itself as opaque: grammar handling lives
// entirely behind this port.
type Codec interface {
	// Parse decodes one calendar document. A grammar violation is reported
	// as an error wrapping domain.ErrParse; partial results are never
	// returned.
	Parse(data []byte) (*domain.Calendar, error)

	// Serialize encodes a calendar document back to wire form.
	Serialize(cal *domain.Calendar) (string, error)
}
