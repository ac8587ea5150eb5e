package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"designtrack/internal/logging"
	"designtrack/internal/models"
	"designtrack/internal/timer"
)

// Store is the persistence gateway the tracker writes through. Calls are
// remote I/O: they may be slow or fail, and a failure never means the write
// did not happen.
type Store interface {
	CreateSession(ctx context.Context, session *models.ProjectSession) error
	UpdateSession(ctx context.Context, session *models.ProjectSession) error
}

// Notifier receives the fire-and-forget completion side effect.
type Notifier interface {
	SessionCompleted(ctx context.Context, session *models.ProjectSession) error
}

// Tracker is the session state machine: it owns the one foreground
// ("attached") session of a logical user session and drives every
// transition through the store. A paused session is detached and lives only
// in the store's IN_PROGRESS set until resumed, possibly by a different
// process on a different day.
type Tracker struct {
	store    Store
	notifier Notifier
	now      func() time.Time

	active *models.ProjectSession
}

// New creates a Tracker. The notifier may be nil when no webhook is
// configured.
func New(store Store, notifier Notifier) *Tracker {
	return &Tracker{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// Active returns the attached session, or nil when detached.
func (t *Tracker) Active() *models.ProjectSession {
	return t.active
}

// Elapsed derives the attached session's active working time as of now.
// It is recomputed from absolute instants on every call; there is no
// incremental counter to drift.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if t.active == nil {
		return 0
	}
	return timer.Elapsed(t.active.StartTime, now, t.active.Ledger())
}

// StartInput carries the fields of a new session.
type StartInput struct {
	NS            string
	ClientName    string
	ProjectCode   string
	Type          models.ProjectType
	ImplementType models.ImplementType
	FlooringType  string
	Notes         string
	UserID        string
}

// Start creates a new IN_PROGRESS session with empty ledgers, persists it
// and attaches it. The work-order number is required; a missing one blocks
// the transition before any persistence call.
func (t *Tracker) Start(ctx context.Context, input StartInput) (*models.ProjectSession, error) {
	if t.active != nil {
		return nil, ErrSessionAttached
	}
	if strings.TrimSpace(input.NS) == "" {
		return nil, ErrMissingNS
	}

	flooring := input.FlooringType
	if !input.ImplementType.HasFlooring() {
		flooring = ""
	}

	session := &models.ProjectSession{
		ID:            uuid.New().String(),
		NS:            strings.TrimSpace(input.NS),
		ClientName:    input.ClientName,
		ProjectCode:   input.ProjectCode,
		Type:          input.Type,
		ImplementType: input.ImplementType,
		FlooringType:  flooring,
		StartTime:     t.now(),
		Status:        models.StatusInProgress,
		Notes:         input.Notes,
		UserID:        input.UserID,
	}

	if err := t.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("session not started: %w", err)
	}

	t.active = session
	logging.Logger.Info("session started", "id", session.ID, "ns", session.NS)
	return session, nil
}

// Pause opens a pause interval at now, persists the session and detaches
// it. The session stays in the store's IN_PROGRESS set, discoverable by any
// later resume list. An empty reason is recorded as "Pause".
func (t *Tracker) Pause(ctx context.Context, reason string) error {
	if t.active == nil {
		return ErrNotAttached
	}
	if strings.TrimSpace(reason) == "" {
		reason = "Pause"
	}

	ledger := t.active.Ledger()
	if err := ledger.OpenPause(reason, t.now()); err != nil {
		return err
	}

	prev := t.active.Pauses
	t.active.Pauses = models.LedgerToPauses(ledger)
	if err := t.store.UpdateSession(ctx, t.active); err != nil {
		// The pause was never recorded anywhere; undo it so the operation
		// can be retried against a consistent session.
		t.active.Pauses = prev
		return fmt.Errorf("pause not persisted: %w", err)
	}

	logging.Logger.Info("session paused", "id", t.active.ID, "reason", reason)
	t.active = nil
	return nil
}

// Resume reattaches a session picked from the pending list. An open tail
// pause is closed with the wall-clock delta (clamped at zero against client
// clock skew) and persisted. A session whose tail is not open just
// reattaches: the client died without pausing, time kept accruing silently,
// and no extra bookkeeping is needed because elapsed time is always derived
// from absolute instants.
func (t *Tracker) Resume(ctx context.Context, session *models.ProjectSession) error {
	if t.active != nil {
		return ErrSessionAttached
	}

	ledger := session.Ledger()
	if ledger.LastPauseIsOpen() {
		if err := ledger.ClosePause(t.now()); err != nil {
			return err
		}
		prev := session.Pauses
		session.Pauses = models.LedgerToPauses(ledger)
		if err := t.store.UpdateSession(ctx, session); err != nil {
			session.Pauses = prev
			return fmt.Errorf("resume not persisted: %w", err)
		}
	}

	t.active = session
	logging.Logger.Info("session resumed", "id", session.ID, "ns", session.NS)
	return nil
}

// Finish completes the attached session: final active seconds are derived
// with now as the end instant, the record is persisted COMPLETED and the
// completion notification fires best-effort. Finishing while detached is
// rejected; a paused session must be resumed first.
func (t *Tracker) Finish(ctx context.Context) (*models.ProjectSession, error) {
	if t.active == nil {
		return nil, ErrNotAttached
	}

	session := t.active
	ledger := session.Ledger()
	if ledger.LastPauseIsOpen() {
		// Attached sessions never carry an open pause; the state machine
		// was driven out of order.
		return nil, timer.ErrPauseAlreadyOpen
	}

	now := t.now()
	prevEnd, prevSecs, prevStatus := session.EndTime, session.TotalActiveSeconds, session.Status
	session.EndTime = &now
	session.TotalActiveSeconds = timer.ElapsedSeconds(session.StartTime, now, ledger)
	session.Status = models.StatusCompleted

	if err := t.store.UpdateSession(ctx, session); err != nil {
		session.EndTime, session.TotalActiveSeconds, session.Status = prevEnd, prevSecs, prevStatus
		return nil, fmt.Errorf("finish not persisted: %w", err)
	}

	t.active = nil
	logging.Logger.Info("session completed",
		"id", session.ID,
		"ns", session.NS,
		"active_seconds", session.TotalActiveSeconds)

	if t.notifier != nil {
		if err := t.notifier.SessionCompleted(ctx, session); err != nil {
			// Completion already happened; the notification is best-effort.
			logging.Logger.Warn("completion notification failed", "id", session.ID, "error", err)
		}
	}

	return session, nil
}

// VariationInput carries the fields of a new variation record.
type VariationInput struct {
	OldCode        string
	NewCode        string
	Description    string
	Type           string
	FilesGenerated bool
}

// AddVariation appends a variation to the attached session and persists the
// full record. At least one of the old or new part codes is required.
func (t *Tracker) AddVariation(ctx context.Context, input VariationInput) (*models.VariationRecord, error) {
	if t.active == nil {
		return nil, ErrNotAttached
	}
	if strings.TrimSpace(input.OldCode) == "" && strings.TrimSpace(input.NewCode) == "" {
		return nil, ErrMissingVariationCode
	}

	record := models.VariationRecord{
		ID:             uuid.New().String(),
		OldCode:        input.OldCode,
		NewCode:        input.NewCode,
		Description:    input.Description,
		Type:           input.Type,
		FilesGenerated: input.FilesGenerated,
	}

	prev := t.active.Variations
	t.active.Variations = append(append([]models.VariationRecord{}, prev...), record)
	if err := t.store.UpdateSession(ctx, t.active); err != nil {
		t.active.Variations = prev
		return nil, fmt.Errorf("variation not persisted: %w", err)
	}
	return &record, nil
}

// ToggleVariationFiles flips the files-generated flag of one variation and
// persists the full record.
func (t *Tracker) ToggleVariationFiles(ctx context.Context, id string) error {
	if t.active == nil {
		return ErrNotAttached
	}

	idx := -1
	for i, v := range t.active.Variations {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrVariationNotFound
	}

	t.active.Variations[idx].FilesGenerated = !t.active.Variations[idx].FilesGenerated
	if err := t.store.UpdateSession(ctx, t.active); err != nil {
		t.active.Variations[idx].FilesGenerated = !t.active.Variations[idx].FilesGenerated
		return fmt.Errorf("variation not persisted: %w", err)
	}
	return nil
}

// RemoveVariation deletes one variation and persists the full record.
func (t *Tracker) RemoveVariation(ctx context.Context, id string) error {
	if t.active == nil {
		return ErrNotAttached
	}

	prev := t.active.Variations
	kept := make([]models.VariationRecord, 0, len(prev))
	for _, v := range prev {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(prev) {
		return ErrVariationNotFound
	}

	t.active.Variations = kept
	if err := t.store.UpdateSession(ctx, t.active); err != nil {
		t.active.Variations = prev
		return fmt.Errorf("variation not persisted: %w", err)
	}
	return nil
}
