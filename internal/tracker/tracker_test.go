package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designtrack/internal/models"
	"designtrack/internal/timer"
)

type fakeStore struct {
	created []models.ProjectSession
	updated []models.ProjectSession

	createErr error
	updateErr error
}

func (s *fakeStore) CreateSession(_ context.Context, session *models.ProjectSession) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *session)
	return nil
}

func (s *fakeStore) UpdateSession(_ context.Context, session *models.ProjectSession) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, *session)
	return nil
}

type fakeNotifier struct {
	completed []models.ProjectSession
	err       error
}

func (n *fakeNotifier) SessionCompleted(_ context.Context, session *models.ProjectSession) error {
	if n.err != nil {
		return n.err
	}
	n.completed = append(n.completed, *session)
	return nil
}

// newTestTracker wires a tracker to fakes with a controllable clock.
func newTestTracker(store *fakeStore, notifier Notifier) (*Tracker, *time.Time) {
	trk := New(store, notifier)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	trk.now = func() time.Time { return now }
	return trk, &now
}

func validStart() StartInput {
	return StartInput{
		NS:            "NS-4821",
		ClientName:    "Transportes Silva",
		ProjectCode:   "P-1042",
		Type:          models.TypeRelease,
		ImplementType: models.ImplementSider,
		FlooringType:  "M/F 30mm",
		UserID:        "joao",
	}
}

func TestStartCreatesAndAttaches(t *testing.T) {
	store := &fakeStore{}
	trk, now := newTestTracker(store, nil)

	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	require.NotNil(t, trk.Active())
	assert.Same(t, session, trk.Active())
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "NS-4821", session.NS)
	assert.Equal(t, models.StatusInProgress, session.Status)
	assert.Equal(t, *now, session.StartTime)
	assert.Empty(t, session.Pauses)
	assert.Empty(t, session.Variations)
	require.Len(t, store.created, 1)
}

func TestStartRequiresNS(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)

	input := validStart()
	input.NS = "   "
	_, err := trk.Start(context.Background(), input)

	assert.ErrorIs(t, err, ErrMissingNS)
	assert.Nil(t, trk.Active())
	assert.Empty(t, store.created)
}

func TestStartRejectsSecondAttach(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	_, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	_, err = trk.Start(context.Background(), validStart())
	assert.ErrorIs(t, err, ErrSessionAttached)
}

func TestStartClearsFlooringForFloorlessImplement(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)

	input := validStart()
	input.ImplementType = models.ImplementTipper
	session, err := trk.Start(context.Background(), input)
	require.NoError(t, err)

	assert.Empty(t, session.FlooringType)
}

func TestStartPersistFailureStaysDetached(t *testing.T) {
	store := &fakeStore{createErr: errors.New("db down")}
	trk, _ := newTestTracker(store, nil)

	_, err := trk.Start(context.Background(), validStart())

	require.Error(t, err)
	assert.Nil(t, trk.Active())
}

func TestPauseDetachesAndRecordsOpenTail(t *testing.T) {
	store := &fakeStore{}
	trk, now := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	*now = now.Add(30 * time.Minute)
	require.NoError(t, trk.Pause(context.Background(), "Lunch"))

	assert.Nil(t, trk.Active())
	require.Len(t, session.Pauses, 1)
	assert.Equal(t, "Lunch", session.Pauses[0].Reason)
	assert.True(t, session.Pauses[0].Open())
	require.Len(t, store.updated, 1)
}

func TestPauseDefaultsReason(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	require.NoError(t, trk.Pause(context.Background(), "  "))
	assert.Equal(t, "Pause", session.Pauses[0].Reason)
}

func TestPauseWhileDetached(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	assert.ErrorIs(t, trk.Pause(context.Background(), "Lunch"), ErrNotAttached)
}

func TestPausePersistFailureRevertsLedger(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	store.updateErr = errors.New("db down")
	err = trk.Pause(context.Background(), "Lunch")

	require.Error(t, err)
	assert.Empty(t, session.Pauses)
	assert.Same(t, session, trk.Active())

	// Retry succeeds against the reverted session.
	store.updateErr = nil
	require.NoError(t, trk.Pause(context.Background(), "Lunch"))
}

func TestResumeClosesOpenTail(t *testing.T) {
	store := &fakeStore{}
	trk, now := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	require.NoError(t, trk.Pause(context.Background(), "Meeting"))

	*now = now.Add(45 * time.Minute)
	require.NoError(t, trk.Resume(context.Background(), session))

	assert.Same(t, session, trk.Active())
	require.Len(t, session.Pauses, 1)
	assert.False(t, session.Pauses[0].Open())
	assert.Equal(t, 45*60, session.Pauses[0].DurationSeconds)
}

func TestResumeWithoutOpenTailJustAttaches(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)

	// The previous client died without pausing: closed ledger, detached.
	session := &models.ProjectSession{
		ID:        "abc",
		NS:        "NS-1",
		StartTime: time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC),
		Status:    models.StatusInProgress,
	}
	require.NoError(t, trk.Resume(context.Background(), session))

	assert.Same(t, session, trk.Active())
	assert.Empty(t, store.updated)
}

func TestResumePersistFailureKeepsTailOpen(t *testing.T) {
	store := &fakeStore{}
	trk, now := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)
	require.NoError(t, trk.Pause(context.Background(), "Lunch"))

	store.updateErr = errors.New("db down")
	*now = now.Add(time.Hour)
	err = trk.Resume(context.Background(), session)

	require.Error(t, err)
	assert.Nil(t, trk.Active())
	assert.True(t, session.Paused())
}

func TestFinishCompletesWithDerivedSeconds(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	trk, now := newTestTracker(store, notifier)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	require.NoError(t, trk.Pause(context.Background(), "Lunch"))
	*now = now.Add(30 * time.Minute)
	require.NoError(t, trk.Resume(context.Background(), session))
	*now = now.Add(time.Hour)

	finished, err := trk.Finish(context.Background())
	require.NoError(t, err)

	assert.Nil(t, trk.Active())
	assert.Equal(t, models.StatusCompleted, finished.Status)
	require.NotNil(t, finished.EndTime)
	assert.Equal(t, *now, *finished.EndTime)
	// 2h30m wall clock minus the 30m pause.
	assert.Equal(t, 2*3600, finished.TotalActiveSeconds)
	require.Len(t, notifier.completed, 1)
	assert.Equal(t, session.ID, notifier.completed[0].ID)
}

func TestFinishWhileDetached(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	_, err := trk.Finish(context.Background())
	assert.ErrorIs(t, err, ErrNotAttached)
}

func TestFinishRejectsOpenPause(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	// Force an inconsistent attached state.
	session.Pauses = []models.PauseRecord{{
		Reason:          "Lunch",
		Timestamp:       session.StartTime,
		DurationSeconds: models.OpenPauseSentinel,
	}}

	_, err = trk.Finish(context.Background())
	assert.ErrorIs(t, err, timer.ErrPauseAlreadyOpen)
}

func TestFinishPersistFailureStaysAttached(t *testing.T) {
	store := &fakeStore{}
	trk, now := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	store.updateErr = errors.New("db down")
	*now = now.Add(time.Hour)
	_, err = trk.Finish(context.Background())

	require.Error(t, err)
	assert.Same(t, session, trk.Active())
	assert.Equal(t, models.StatusInProgress, session.Status)
	assert.Nil(t, session.EndTime)
	assert.Zero(t, session.TotalActiveSeconds)
}

func TestFinishNotifierFailureStillCompletes(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("webhook down")}
	trk, _ := newTestTracker(store, notifier)
	_, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	finished, err := trk.Finish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, finished.Status)
}

func TestElapsedDerivedFromTracker(t *testing.T) {
	trk, now := newTestTracker(&fakeStore{}, nil)
	assert.Zero(t, trk.Elapsed(*now))

	_, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, trk.Elapsed(now.Add(10*time.Minute)))
}

func TestAddVariation(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	record, err := trk.AddVariation(context.Background(), VariationInput{
		OldCode:     "CHP-100",
		NewCode:     "CHP-100-A",
		Description: "Reinforced bracket",
		Type:        "part",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	require.Len(t, session.Variations, 1)
	assert.Equal(t, "CHP-100-A", session.Variations[0].NewCode)
}

func TestAddVariationRequiresACode(t *testing.T) {
	trk, _ := newTestTracker(&fakeStore{}, nil)
	_, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	_, err = trk.AddVariation(context.Background(), VariationInput{Description: "no codes"})
	assert.ErrorIs(t, err, ErrMissingVariationCode)
}

func TestAddVariationPersistFailureReverts(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	store.updateErr = errors.New("db down")
	_, err = trk.AddVariation(context.Background(), VariationInput{NewCode: "CHP-1"})

	require.Error(t, err)
	assert.Empty(t, session.Variations)
}

func TestToggleVariationFiles(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	record, err := trk.AddVariation(context.Background(), VariationInput{NewCode: "CHP-1"})
	require.NoError(t, err)

	require.NoError(t, trk.ToggleVariationFiles(context.Background(), record.ID))
	assert.True(t, session.Variations[0].FilesGenerated)

	require.NoError(t, trk.ToggleVariationFiles(context.Background(), record.ID))
	assert.False(t, session.Variations[0].FilesGenerated)

	assert.ErrorIs(t, trk.ToggleVariationFiles(context.Background(), "missing"), ErrVariationNotFound)
}

func TestRemoveVariation(t *testing.T) {
	store := &fakeStore{}
	trk, _ := newTestTracker(store, nil)
	session, err := trk.Start(context.Background(), validStart())
	require.NoError(t, err)

	record, err := trk.AddVariation(context.Background(), VariationInput{NewCode: "CHP-1"})
	require.NoError(t, err)
	keep, err := trk.AddVariation(context.Background(), VariationInput{NewCode: "CHP-2"})
	require.NoError(t, err)

	require.NoError(t, trk.RemoveVariation(context.Background(), record.ID))
	require.Len(t, session.Variations, 1)
	assert.Equal(t, keep.ID, session.Variations[0].ID)

	assert.ErrorIs(t, trk.RemoveVariation(context.Background(), record.ID), ErrVariationNotFound)
}
