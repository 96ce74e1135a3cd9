package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCmd_Use(t *testing.T) {
	assert.Equal(t, "remove [file...]", removeCmd.Use)
}

func TestRemoveCmd_HasPropFlag(t *testing.T) {
	flag := removeCmd.Flags().Lookup("prop")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
}

func TestRemoveCmd_RequiresProp(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "remove")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one --prop is required")
}

func TestRemoveCmd_StripsProperty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)

	out, err := execute(t, "remove", "-p", "LOCATION", alpha)
	require.NoError(t, err)

	assert.NotContains(t, out, "LOCATION")
	assert.Contains(t, out, "SUMMARY:Alpha Standup")
}

func TestRemoveCmd_MultipleProps(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)

	out, err := execute(t, "remove", "-p", "LOCATION", "-p", "SUMMARY", alpha)
	require.NoError(t, err)

	assert.NotContains(t, out, "LOCATION")
	assert.NotContains(t, out, "SUMMARY")
	assert.Contains(t, out, "UID:shared@example.com")
}
