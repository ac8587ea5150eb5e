package timer

import (
	"fmt"
	"time"
)

// Elapsed computes the active working time of a session as of now: the
// whole-second wall-clock span since start minus every closed pause. It is
// always derived from absolute instants, never accumulated incrementally,
// so it stays correct across client restarts, system sleep and multi-day
// detach gaps. An open pause subtracts nothing; a detached session's
// display simply shows no running value.
func Elapsed(start, now time.Time, ledger Ledger) time.Duration {
	total := now.Sub(start).Truncate(time.Second)
	active := total - ledger.TotalClosedDuration()
	if active < 0 {
		return 0
	}
	return active
}

// ElapsedSeconds is Elapsed expressed as whole seconds, the unit persisted
// on completed sessions.
func ElapsedSeconds(start, now time.Time, ledger Ledger) int {
	return int(Elapsed(start, now, ledger) / time.Second)
}

// FormatSeconds renders whole seconds as HH:MM:SS, the display format used
// by the live clock, exports and notifications.
func FormatSeconds(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
