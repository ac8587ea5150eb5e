package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedWithoutPauses(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 90*time.Minute, Elapsed(start, start.Add(90*time.Minute), nil))
	assert.Equal(t, 5400, ElapsedSeconds(start, start.Add(90*time.Minute), nil))
}

func TestElapsedSubtractsClosedPauses(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", start.Add(time.Hour)))
	require.NoError(t, ledger.ClosePause(start.Add(time.Hour+45*time.Minute)))

	// Two hours on the wall clock, 45 minutes of it paused.
	assert.Equal(t, 75*time.Minute, Elapsed(start, start.Add(2*time.Hour), ledger))
}

func TestElapsedIgnoresOpenPause(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Meeting", start.Add(time.Hour)))

	// An open pause subtracts nothing until it is closed.
	assert.Equal(t, 2*time.Hour, Elapsed(start, start.Add(2*time.Hour), ledger))

	require.NoError(t, ledger.ClosePause(start.Add(90*time.Minute)))
	assert.Equal(t, 90*time.Minute, Elapsed(start, start.Add(2*time.Hour), ledger))
}

func TestElapsedSurvivesMultiDayGap(t *testing.T) {
	start := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	now := start.Add(72*time.Hour + 30*time.Minute)

	var ledger Ledger
	require.NoError(t, ledger.OpenPause("End of day", start.Add(time.Hour)))
	require.NoError(t, ledger.ClosePause(now.Add(-time.Hour)))

	// Derived from absolute instants, so the long detach gap is exact.
	assert.Equal(t, 2*time.Hour, Elapsed(start, now, ledger))
}

func TestElapsedNeverNegative(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Duration(0), Elapsed(start, start.Add(-time.Minute), nil))

	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", start))
	require.NoError(t, ledger.ClosePause(start.Add(2*time.Hour)))
	assert.Equal(t, time.Duration(0), Elapsed(start, start.Add(time.Hour), ledger))
}

func TestElapsedIsMonotonicAcrossPauseCycle(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	var ledger Ledger
	before := Elapsed(start, start.Add(time.Hour), ledger)
	require.NoError(t, ledger.OpenPause("Lunch", start.Add(time.Hour)))
	require.NoError(t, ledger.ClosePause(start.Add(time.Hour+20*time.Minute)))
	after := Elapsed(start, start.Add(time.Hour+20*time.Minute), ledger)

	assert.Equal(t, before, after)
	assert.GreaterOrEqual(t, int64(Elapsed(start, start.Add(2*time.Hour), ledger)), int64(after))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatSeconds(0))
	assert.Equal(t, "00:00:59", FormatSeconds(59))
	assert.Equal(t, "01:00:00", FormatSeconds(3600))
	assert.Equal(t, "02:05:09", FormatSeconds(7509))
	assert.Equal(t, "27:46:40", FormatSeconds(100000))
}
