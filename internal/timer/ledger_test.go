package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestOpenPauseAppendsOpenRecord(t *testing.T) {
	var ledger Ledger

	require.NoError(t, ledger.OpenPause("Lunch", base))

	require.Len(t, ledger, 1)
	assert.True(t, ledger.LastPauseIsOpen())
	assert.Equal(t, "Lunch", ledger[0].Reason)
	assert.Equal(t, base, ledger[0].StartedAt)
	assert.False(t, ledger[0].Closed)
}

func TestOpenPauseRejectsSecondOpen(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", base))

	err := ledger.OpenPause("Meeting", base.Add(time.Minute))

	assert.ErrorIs(t, err, ErrPauseAlreadyOpen)
	assert.Len(t, ledger, 1)
}

func TestClosePauseFixesDurationOnce(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", base))

	require.NoError(t, ledger.ClosePause(base.Add(45*time.Minute)))

	require.Len(t, ledger, 1)
	assert.True(t, ledger[0].Closed)
	assert.Equal(t, 45*time.Minute, ledger[0].Duration)
	assert.False(t, ledger.LastPauseIsOpen())
}

func TestClosePauseWithoutOpenTail(t *testing.T) {
	var ledger Ledger
	assert.ErrorIs(t, ledger.ClosePause(base), ErrNoOpenPause)

	require.NoError(t, ledger.OpenPause("Lunch", base))
	require.NoError(t, ledger.ClosePause(base.Add(time.Minute)))
	assert.ErrorIs(t, ledger.ClosePause(base.Add(2*time.Minute)), ErrNoOpenPause)
}

func TestClosePauseClampsBackwardsClock(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", base))

	require.NoError(t, ledger.ClosePause(base.Add(-time.Minute)))

	assert.Equal(t, time.Duration(0), ledger[0].Duration)
	assert.True(t, ledger[0].Closed)
}

func TestClosePauseTruncatesToWholeSeconds(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Phone", base))

	require.NoError(t, ledger.ClosePause(base.Add(90*time.Second+700*time.Millisecond)))

	assert.Equal(t, 90*time.Second, ledger[0].Duration)
}

func TestTotalClosedDurationIgnoresOpenTail(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", base))
	require.NoError(t, ledger.ClosePause(base.Add(30*time.Minute)))
	require.NoError(t, ledger.OpenPause("Meeting", base.Add(time.Hour)))
	require.NoError(t, ledger.ClosePause(base.Add(time.Hour+15*time.Minute)))
	require.NoError(t, ledger.OpenPause("Phone", base.Add(2*time.Hour)))

	assert.Equal(t, 45*time.Minute, ledger.TotalClosedDuration())
}

func TestCloneIsIndependent(t *testing.T) {
	var ledger Ledger
	require.NoError(t, ledger.OpenPause("Lunch", base))

	clone := ledger.Clone()
	require.NoError(t, ledger.ClosePause(base.Add(time.Minute)))

	assert.True(t, ledger[0].Closed)
	assert.False(t, clone[0].Closed)
	assert.Nil(t, Ledger(nil).Clone())
}
