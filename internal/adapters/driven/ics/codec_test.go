package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icstools/icsmerge/internal/core/domain"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
)

const sampleCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Test//EN
X-WR-CALNAME:Team Calendar
X-WR-CALDESC:Shared team events
X-WR-TIMEZONE:Europe/Berlin
BEGIN:VTIMEZONE
TZID:Europe/Berlin
BEGIN:STANDARD
TZOFFSETFROM:+0200
TZOFFSETTO:+0100
DTSTART:19701025T030000
END:STANDARD
BEGIN:DAYLIGHT
TZOFFSETFROM:+0100
TZOFFSETTO:+0200
DTSTART:19700329T020000
END:DAYLIGHT
END:VTIMEZONE
BEGIN:VEVENT
UID:ev1@example.com
SUMMARY:Standup
DTSTART;TZID=Europe/Berlin:20240115T090000
DTEND;TZID=Europe/Berlin:20240115T091500
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT10M
END:VALARM
END:VEVENT
BEGIN:VTODO
UID:todo1@example.com
SUMMARY:Prepare agenda
END:VTODO
END:VCALENDAR`

func TestParse_Metadata(t *testing.T) {
	codec := NewCodec()

	cal, err := codec.Parse([]byte(sampleCalendar))
	require.NoError(t, err)
	require.NotNil(t, cal)

	assert.Equal(t, "Team Calendar", cal.Name)
	assert.Equal(t, "Shared team events", cal.Description)
	assert.Equal(t, "Europe/Berlin", cal.Timezone)
}

func TestParse_Components(t *testing.T) {
	codec := NewCodec()

	cal, err := codec.Parse([]byte(sampleCalendar))
	require.NoError(t, err)
	require.Len(t, cal.Components, 3)

	// VTIMEZONE with its STANDARD/DAYLIGHT children, in original position.
	tz, ok := cal.Components[0].(*domain.Block)
	require.True(t, ok)
	assert.Equal(t, domain.KindTimezone, tz.Kind)
	id, ok := tz.TimezoneID()
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", id)
	require.Len(t, tz.Children, 2)
	assert.Equal(t, "STANDARD", tz.Children[0].Kind)
	assert.Equal(t, "DAYLIGHT", tz.Children[1].Kind)

	// VEVENT with ordered properties, TZID parameter and VALARM child.
	ev, ok := cal.Components[1].(*domain.Event)
	require.True(t, ok)
	uid, ok := ev.UID()
	require.True(t, ok)
	assert.Equal(t, "ev1@example.com", uid)
	dtstart, ok := ev.Get("DTSTART")
	require.True(t, ok)
	assert.Equal(t, "20240115T090000", dtstart.Value)
	assert.Equal(t, []string{"Europe/Berlin"}, dtstart.Params[domain.ParamTZID])
	require.Len(t, ev.Alarms, 1)
	assert.Equal(t, domain.KindAlarm, ev.Alarms[0].Kind)

	// VTODO stays an opaque block.
	todo, ok := cal.Components[2].(*domain.Block)
	require.True(t, ok)
	assert.Equal(t, "VTODO", todo.Kind)
}

func TestParse_NamePreferredOverXWR(t *testing.T) {
	codec := NewCodec()

	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"NAME:Preferred\r\n" +
		"X-WR-CALNAME:Fallback\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := codec.Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Preferred", cal.Name)
}

func TestParse_Invalid(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Parse([]byte("not a calendar"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestSerialize_Nil(t *testing.T) {
	codec := NewCodec()

	_, err := codec.Serialize(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSerialize_Metadata(t *testing.T) {
	codec := NewCodec()

	out, err := codec.Serialize(&domain.Calendar{
		Name:        "Merged",
		Description: "All feeds",
		Timezone:    "UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "PRODID:-//icstools//icsmerge//EN")
	assert.Contains(t, out, "NAME:Merged")
	assert.Contains(t, out, "X-WR-CALNAME:Merged")
	assert.Contains(t, out, "DESCRIPTION:All feeds")
	assert.Contains(t, out, "X-WR-CALDESC:All feeds")
	assert.Contains(t, out, "X-WR-TIMEZONE:UTC")
}

func TestSerialize_EmptyMetadataOmitted(t *testing.T) {
	codec := NewCodec()

	out, err := codec.Serialize(&domain.Calendar{})
	require.NoError(t, err)

	assert.NotContains(t, out, "NAME")
	assert.NotContains(t, out, "X-WR-TIMEZONE")
}

func TestRoundTrip(t *testing.T) {
	codec := NewCodec()

	cal, err := codec.Parse([]byte(sampleCalendar))
	require.NoError(t, err)

	out, err := codec.Serialize(cal)
	require.NoError(t, err)

	// Structure survives a round trip.
	assert.Contains(t, out, "BEGIN:VTIMEZONE")
	assert.Contains(t, out, "TZID:Europe/Berlin")
	assert.Contains(t, out, "BEGIN:STANDARD")
	assert.Contains(t, out, "BEGIN:DAYLIGHT")
	assert.Contains(t, out, "UID:ev1@example.com")
	assert.Contains(t, out, "BEGIN:VALARM")
	assert.Contains(t, out, "BEGIN:VTODO")

	reparsed, err := codec.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, cal.Components, reparsed.Components)
	assert.Equal(t, cal.Name, reparsed.Name)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Codec = (*Codec)(nil)
}
