package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patelajay005/Saathi/internal/domain/habits"
)

func TestParseDateParamKeepsCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	parsed, err := parseDateParam("2024-05-20", loc)
	require.NoError(t, err)

	// The requested calendar day must survive the service's day
	// normalization regardless of how far the zone sits behind UTC.
	dayStart := habits.DayStart(parsed.In(loc))
	assert.Equal(t, 2024, dayStart.Year())
	assert.Equal(t, time.May, dayStart.Month())
	assert.Equal(t, 20, dayStart.Day())

	// Parsing the same value as UTC shifts the day west of Greenwich,
	// which is exactly the behavior the helper exists to avoid.
	utcParsed, err := time.Parse(dateLayout, "2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, 19, habits.DayStart(utcParsed.In(loc)).Day())
}

func TestParseDateParamNilLocationDefaultsUTC(t *testing.T) {
	parsed, err := parseDateParam("2024-05-20", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 20, parsed.Day())
}

func TestParseDateParamRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"20-05-2024", "2024/05/20", "yesterday", ""} {
		_, err := parseDateParam(value, time.UTC)
		assert.Error(t, err, value)
	}
}
