package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitCmd_Use(t *testing.T) {
	assert.Equal(t, "limit <count> [file...]", limitCmd.Use)
}

func TestLimitCmd_RequiresCount(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "limit")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestLimitCmd_RejectsBadCount(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []string{"abc", "-1", "2.5"}
	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			// The -- separator keeps negative counts out of flag parsing.
			_, err := execute(t, "limit", "--", arg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid event count")
		})
	}
}

func TestLimitCmd_KeepsFirstN(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)
	beta := writeICS(t, dir, "beta.ics", calendarBeta)

	out, err := execute(t, "limit", "2", alpha, beta)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:shared@example.com")
	assert.Contains(t, out, "UID:alpha-only@example.com")
	assert.NotContains(t, out, "UID:beta-only@example.com")
}

func TestLimitCmd_ZeroDropsAllEvents(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)

	out, err := execute(t, "limit", "0", alpha)
	require.NoError(t, err)

	assert.NotContains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "BEGIN:VCALENDAR")
}
