package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBackendTime(t *testing.T) {
	got, err := ParseBackendTime("2026-03-14 18:30")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC), got)

	got, err = ParseBackendTime("1990-07-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseBackendTime("14/03/2026")
	require.Error(t, err)
}

func TestFormatBackendTimeRoundTrip(t *testing.T) {
	day := time.Date(2026, 8, 27, 19, 0, 0, 0, time.UTC)
	require.Equal(t, "2026-08-27 19:00", FormatBackendTime(day))
	require.Equal(t, "2026-08-27", FormatBackendDate(day))

	parsed, err := ParseBackendTime(FormatBackendTime(day))
	require.NoError(t, err)
	require.True(t, day.Equal(parsed))
}

func TestParseInputDate(t *testing.T) {
	got, err := ParseInputDate("25/12/1985")
	require.NoError(t, err)
	require.Equal(t, time.Date(1985, 12, 25, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseInputDate("1985-12-25")
	require.Error(t, err)
}

func TestDisplayDate(t *testing.T) {
	require.Equal(t, "14/03/2026", DisplayDate("2026-03-14 18:30"))
	// Unparseable values pass through so lists still render.
	require.Equal(t, "garbage", DisplayDate("garbage"))
}
