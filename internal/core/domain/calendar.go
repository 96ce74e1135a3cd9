package domain

// Well-known property names and component kinds the merge core relies on.
const (
	PropUID          = "UID"
	PropTZID         = "TZID"
	PropLastModified = "LAST-MODIFIED"

	// ParamTZID is the property parameter carrying a timezone reference,
	// e.g. DTSTART;TZID=Europe/Berlin:20240101T090000.
	ParamTZID = "TZID"

	KindTimezone = "VTIMEZONE"
	KindAlarm    = "VALARM"
)

// Property is a single content line of a component: a name, a value and the
// parameters attached to the line (e.g. the TZID on a DTSTART). Parameter
// order within a line is not observable through the wire library, so
// parameters are a name -> values map mirroring its representation.
type Property struct {
	Name   string
	Value  string
	Params map[string][]string
}

// Clone returns a deep copy of the property.
func (p Property) Clone() Property {
	out := Property{Name: p.Name, Value: p.Value}
	if p.Params != nil {
		out.Params = make(map[string][]string, len(p.Params))
		for k, vs := range p.Params {
			out.Params[k] = append([]string(nil), vs...)
		}
	}
	return out
}

// Param returns the first value of the named parameter.
func (p Property) Param(name string) (string, bool) {
	vs, ok := p.Params[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Component is one structural element of a calendar document: either an
// *Event or an opaque *Block. The set of implementations is closed.
type Component interface {
	component()
}

// Event is a VEVENT: an ordered property multi-map plus any VALARM children,
// which the merge core carries along untouched.
type Event struct {
	Properties []Property
	Alarms     []Block
}

func (*Event) component() {}

// UID returns the event's identity key. Events carry at most one UID; the
// first one wins if a malformed event repeats it.
func (e *Event) UID() (string, bool) {
	for _, p := range e.Properties {
		if p.Name == PropUID && p.Value != "" {
			return p.Value, true
		}
	}
	return "", false
}

// Get returns the first property with the given name.
func (e *Event) Get(name string) (Property, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Clone returns a deep copy of the event. Processors transform copies so the
// builder's retained components are never mutated in place.
func (e *Event) Clone() *Event {
	out := &Event{}
	if e.Properties != nil {
		out.Properties = make([]Property, len(e.Properties))
		for i, p := range e.Properties {
			out.Properties[i] = p.Clone()
		}
	}
	if e.Alarms != nil {
		out.Alarms = make([]Block, len(e.Alarms))
		for i := range e.Alarms {
			out.Alarms[i] = e.Alarms[i].Clone()
		}
	}
	return out
}

// Block is any non-event component: VTIMEZONE, VTODO, VJOURNAL, X- extension
// blocks. It is opaque to the merge core except for the Kind tag and, for
// VTIMEZONE, the TZID used as a deduplication key. Nested sub-blocks
// (STANDARD/DAYLIGHT rules inside a VTIMEZONE) are preserved in Children.
type Block struct {
	Kind       string
	Properties []Property
	Children   []Block
}

func (*Block) component() {}

// TimezoneID returns the block's TZID property value. Only meaningful for
// KindTimezone blocks; a VTIMEZONE without a TZID cannot be deduplicated.
func (b *Block) TimezoneID() (string, bool) {
	for _, p := range b.Properties {
		if p.Name == PropTZID && p.Value != "" {
			return p.Value, true
		}
	}
	return "", false
}

// Clone returns a deep copy of the block and its children.
func (b Block) Clone() Block {
	out := Block{Kind: b.Kind}
	if b.Properties != nil {
		out.Properties = make([]Property, len(b.Properties))
		for i, p := range b.Properties {
			out.Properties[i] = p.Clone()
		}
	}
	if b.Children != nil {
		out.Children = make([]Block, len(b.Children))
		for i := range b.Children {
			out.Children[i] = b.Children[i].Clone()
		}
	}
	return out
}

// Calendar is a parsed calendar document: calendar-level metadata plus the
// ordered component sequence. Metadata fields are empty when absent.
type Calendar struct {
	Name        string
	Description string
	Timezone    string
	Components  []Component
}

// Events returns the calendar's events in order.
func (c *Calendar) Events() []*Event {
	var out []*Event
	for _, comp := range c.Components {
		if ev, ok := comp.(*Event); ok {
			out = append(out, ev)
		}
	}
	return out
}
