package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCmd_Use(t *testing.T) {
	assert.Equal(t, "apply <processor> [file...]", applyCmd.Use)
}

func TestApplyCmd_UnknownProcessor(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "apply", "nonsense")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown processor "nonsense"`)
	assert.Contains(t, err.Error(), "remove")
}

func TestApplyCmd_InvalidSet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { applySets = nil }()

	_, err := execute(t, "apply", "remove", "--set", "no-equals-sign")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "want key=value")
}

func TestApplyCmd_RemoveWithList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { applySets = nil }()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)

	out, err := execute(t, "apply", "remove", "--set", "props=LOCATION,SUMMARY", alpha)
	require.NoError(t, err)

	assert.NotContains(t, out, "LOCATION")
	assert.NotContains(t, out, "SUMMARY")
	assert.Contains(t, out, "UID:shared@example.com")
}

func TestApplyCmd_LimitWithCount(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { applySets = nil }()

	dir := t.TempDir()
	alpha := writeICS(t, dir, "alpha.ics", calendarAlpha)

	out, err := execute(t, "apply", "limit", "--set", "count=1", alpha)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
}

func TestApplyCmd_MissingRequiredOption(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { applySets = nil }()

	_, err := execute(t, "apply", "replace")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing config key")
}

func TestParseOption_Types(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"plain", "plain"},
		{"42", 42},
		{"true", true},
		{"a,b,c", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOption(tt.raw))
		})
	}
}
