package models

import (
	"time"

	"designtrack/internal/timer"
)

// PausesToLedger converts wire pause records into a domain ledger. A record
// carrying the open sentinel becomes an open interval; everything else is
// closed with its recorded whole-second duration.
func PausesToLedger(records []PauseRecord) timer.Ledger {
	if len(records) == 0 {
		return nil
	}
	ledger := make(timer.Ledger, 0, len(records))
	for _, r := range records {
		p := timer.Pause{Reason: r.Reason, StartedAt: r.Timestamp}
		if !r.Open() {
			p.Closed = true
			p.Duration = time.Duration(r.DurationSeconds) * time.Second
		}
		ledger = append(ledger, p)
	}
	return ledger
}

// LedgerToPauses converts a domain ledger back to wire records, encoding an
// open tail as the -1 sentinel.
func LedgerToPauses(ledger timer.Ledger) []PauseRecord {
	if len(ledger) == 0 {
		return nil
	}
	records := make([]PauseRecord, 0, len(ledger))
	for _, p := range ledger {
		r := PauseRecord{
			Reason:          p.Reason,
			Timestamp:       p.StartedAt,
			DurationSeconds: OpenPauseSentinel,
		}
		if p.Closed {
			r.DurationSeconds = int(p.Duration / time.Second)
		}
		records = append(records, r)
	}
	return records
}
