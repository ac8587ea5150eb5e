package timer

import (
	"errors"
	"time"
)

var (
	ErrPauseAlreadyOpen = errors.New("pause already open")
	ErrNoOpenPause      = errors.New("no open pause")
)

// Pause is one recorded interruption of a work session. While the pause is
// ongoing Closed is false and Duration is meaningless; closing it fixes the
// duration once, after which the record never changes again.
type Pause struct {
	Reason    string
	StartedAt time.Time
	Duration  time.Duration
	Closed    bool
}

// Ledger is the ordered pause history of a single session. Records are
// appended by OpenPause and only the last record may be mutated, exactly
// once, by ClosePause.
type Ledger []Pause

// LastPauseIsOpen reports whether the tail record is still ongoing.
func (l Ledger) LastPauseIsOpen() bool {
	return len(l) > 0 && !l[len(l)-1].Closed
}

// OpenPause appends a new open pause starting at the given instant.
// At most one pause may be open at a time.
func (l *Ledger) OpenPause(reason string, at time.Time) error {
	if l.LastPauseIsOpen() {
		return ErrPauseAlreadyOpen
	}
	*l = append(*l, Pause{Reason: reason, StartedAt: at})
	return nil
}

// ClosePause closes the open tail pause, fixing its duration to the
// wall-clock delta in whole seconds. A client clock that moved backwards
// between open and close yields a zero duration, never a negative one.
func (l Ledger) ClosePause(at time.Time) error {
	if !l.LastPauseIsOpen() {
		return ErrNoOpenPause
	}
	last := &l[len(l)-1]
	d := at.Sub(last.StartedAt).Truncate(time.Second)
	if d < 0 {
		d = 0
	}
	last.Duration = d
	last.Closed = true
	return nil
}

// TotalClosedDuration sums the durations of all closed pauses. An open tail
// contributes nothing.
func (l Ledger) TotalClosedDuration() time.Duration {
	var total time.Duration
	for _, p := range l {
		if p.Closed {
			total += p.Duration
		}
	}
	return total
}

// Clone returns an independent copy of the ledger so a caller can mutate
// one without aliasing the other's backing array.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}
