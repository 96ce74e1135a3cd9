// Package ics implements the driven.Codec port on top of
// github.com/arran4/golang-ical. All iCalendar grammar handling (line
// folding, escaping, parameter syntax) lives in the library; this adapter
// only maps between its component model and the domain model.
package ics

import (
	"bytes"
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

// productID identifies icsmerge output calendars.
const productID = "-//icstools//icsmerge//EN"

// Calendar property tokens for metadata. The RFC 7986 NAME/DESCRIPTION
// forms are read first, with the widespread X-WR- variants as fallback;
// output carries both, matching common publisher behavior.
const (
	propName        = "NAME"
	propXWRCalName  = "X-WR-CALNAME"
	propDescription = "DESCRIPTION"
	propXWRCalDesc  = "X-WR-CALDESC"
	propXWRTimezone = "X-WR-TIMEZONE"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec converts between iCalendar text and domain calendars.
type Codec struct{}

// NewCodec creates the golang-ical backed codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse implements driven.Codec.
func (c *Codec) Parse(data []byte) (*domain.Calendar, error) {
	parsed, err := ical.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	out := &domain.Calendar{}
	out.Name = calendarProperty(parsed, propName, propXWRCalName)
	out.Description = calendarProperty(parsed, propDescription, propXWRCalDesc)
	out.Timezone = calendarProperty(parsed, propXWRTimezone)

	for _, comp := range parsed.Components {
		if ve, ok := comp.(*ical.VEvent); ok {
			out.Components = append(out.Components, eventFromICS(ve))
			continue
		}
		block := blockFromICS(comp)
		out.Components = append(out.Components, &block)
	}

	return out, nil
}

// Serialize implements driven.Codec.
func (c *Codec) Serialize(cal *domain.Calendar) (string, error) {
	if cal == nil {
		return "", domain.ErrInvalidInput
	}

	out := ical.NewCalendar()
	out.SetProductId(productID)

	if cal.Name != "" {
		setCalendarProperty(out, propName, cal.Name)
		setCalendarProperty(out, propXWRCalName, cal.Name)
	}
	if cal.Description != "" {
		setCalendarProperty(out, propDescription, cal.Description)
		setCalendarProperty(out, propXWRCalDesc, cal.Description)
	}
	if cal.Timezone != "" {
		setCalendarProperty(out, propXWRTimezone, cal.Timezone)
	}

	for _, comp := range cal.Components {
		switch c := comp.(type) {
		case *domain.Event:
			out.Components = append(out.Components, eventToICS(c))
		case *domain.Block:
			out.Components = append(out.Components, blockToICS(*c))
		}
	}

	return out.Serialize(), nil
}

// calendarProperty returns the first non-empty value among the given
// calendar-level property tokens.
func calendarProperty(cal *ical.Calendar, tokens ...string) string {
	for _, token := range tokens {
		for _, p := range cal.CalendarProperties {
			if p.IANAToken == token && p.Value != "" {
				return p.Value
			}
		}
	}
	return ""
}

func setCalendarProperty(cal *ical.Calendar, token, value string) {
	cal.CalendarProperties = append(cal.CalendarProperties, ical.CalendarProperty{
		BaseProperty: ical.BaseProperty{IANAToken: token, Value: value},
	})
}

func eventFromICS(ve *ical.VEvent) *domain.Event {
	ev := &domain.Event{Properties: propsFromICS(ve.UnknownPropertiesIANAProperties())}
	for _, sub := range ve.SubComponents() {
		ev.Alarms = append(ev.Alarms, blockFromICS(sub))
	}
	return ev
}

func eventToICS(ev *domain.Event) *ical.VEvent {
	base := ical.ComponentBase{Properties: propsToICS(ev.Properties)}
	for _, alarm := range ev.Alarms {
		base.Components = append(base.Components, blockToICS(alarm))
	}
	return &ical.VEvent{ComponentBase: base}
}

func blockFromICS(comp ical.Component) domain.Block {
	block := domain.Block{
		Kind:       componentKind(comp),
		Properties: propsFromICS(comp.UnknownPropertiesIANAProperties()),
	}
	for _, sub := range comp.SubComponents() {
		block.Children = append(block.Children, blockFromICS(sub))
	}
	return block
}

func blockToICS(block domain.Block) ical.Component {
	base := ical.ComponentBase{Properties: propsToICS(block.Properties)}
	for _, child := range block.Children {
		base.Components = append(base.Components, blockToICS(child))
	}

	switch block.Kind {
	case "VEVENT":
		return &ical.VEvent{ComponentBase: base}
	case "VTODO":
		return &ical.VTodo{ComponentBase: base}
	case "VJOURNAL":
		return &ical.VJournal{ComponentBase: base}
	case "VFREEBUSY":
		return &ical.VBusy{ComponentBase: base}
	case domain.KindTimezone:
		return &ical.VTimezone{ComponentBase: base}
	case domain.KindAlarm:
		return &ical.VAlarm{ComponentBase: base}
	case "STANDARD":
		return &ical.Standard{ComponentBase: base}
	case "DAYLIGHT":
		return &ical.Daylight{ComponentBase: base}
	default:
		return &ical.GeneralComponent{ComponentBase: base, Token: block.Kind}
	}
}

func componentKind(comp ical.Component) string {
	switch c := comp.(type) {
	case *ical.VEvent:
		return "VEVENT"
	case *ical.VTodo:
		return "VTODO"
	case *ical.VJournal:
		return "VJOURNAL"
	case *ical.VBusy:
		return "VFREEBUSY"
	case *ical.VTimezone:
		return domain.KindTimezone
	case *ical.VAlarm:
		return domain.KindAlarm
	case *ical.Standard:
		return "STANDARD"
	case *ical.Daylight:
		return "DAYLIGHT"
	case *ical.GeneralComponent:
		return c.Token
	default:
		return ""
	}
}

func propsFromICS(props []ical.IANAProperty) []domain.Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		prop := domain.Property{Name: p.IANAToken, Value: p.Value}
		if len(p.ICalParameters) > 0 {
			prop.Params = make(map[string][]string, len(p.ICalParameters))
			for k, vs := range p.ICalParameters {
				prop.Params[k] = append([]string(nil), vs...)
			}
		}
		out = append(out, prop)
	}
	return out
}

func propsToICS(props []domain.Property) []ical.IANAProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]ical.IANAProperty, 0, len(props))
	for _, p := range props {
		prop := ical.IANAProperty{
			BaseProperty: ical.BaseProperty{IANAToken: p.Name, Value: p.Value},
		}
		if len(p.Params) > 0 {
			prop.ICalParameters = make(map[string][]string, len(p.Params))
			for k, vs := range p.Params {
				prop.ICalParameters[k] = append([]string(nil), vs...)
			}
		}
		out = append(out, prop)
	}
	return out
}
