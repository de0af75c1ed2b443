package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/models"
)

func newTestWizard(t *testing.T) (*WizardService, *memDrafts) {
	t.Helper()
	drafts := newMemDrafts()
	api := &fakeRoomTypeAPI{roomType: deluxeRoomType()}
	svc := NewWizardService(drafts, api, nil)
	svc.now = fixedNow
	return svc, drafts
}

func TestCreateDraftDefaults(t *testing.T) {
	svc, _ := newTestWizard(t)

	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StepDetails, draft.Step)
	assert.Equal(t, "2024-06-01", draft.CheckIn.String())
	assert.Equal(t, "2024-06-02", draft.CheckOut.String())
	assert.Equal(t, 1, draft.Guests)
	assert.Equal(t, 1, draft.Nights)
	assert.Equal(t, int64(15000), draft.TotalPrice)
}

func TestCreateDraftAuthenticatedSkipsLoginGate(t *testing.T) {
	svc, _ := newTestWizard(t)

	draft, err := svc.CreateDraft(context.Background(), 1, testSession())
	require.NoError(t, err)
	assert.Equal(t, models.StepGuestInfo, draft.Step)
	assert.Equal(t, "sess-1", draft.SessionID)
}

func TestNightsAndTotalRecomputedOnDateChange(t *testing.T) {
	svc, _ := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	checkIn := models.NewDate(2024, time.June, 1)
	checkOut := models.NewDate(2024, time.June, 4)
	updated, err := svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Nights)
	assert.Equal(t, int64(45000), updated.TotalPrice)
}

func TestCheckOutAutoAdvance(t *testing.T) {
	svc, _ := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	checkIn := models.NewDate(2024, time.June, 2)
	checkOut := models.NewDate(2024, time.June, 4)
	_, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{CheckIn: &checkIn, CheckOut: &checkOut})
	require.NoError(t, err)

	// Moving check-in onto the check-out date drags check-out forward a day.
	newCheckIn := models.NewDate(2024, time.June, 4)
	updated, err := svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{CheckIn: &newCheckIn})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-04", updated.CheckIn.String())
	assert.Equal(t, "2024-06-05", updated.CheckOut.String())
}

func TestGuestCountBound(t *testing.T) {
	svc, drafts := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	five := 5
	_, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{Guests: &five})
	var ferr *models.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "guests", ferr.Field)

	zero := 0
	_, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{Guests: &zero})
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "guests", ferr.Field)

	// An out-of-range value planted directly is still rejected at the gate.
	seeded, err := drafts.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	seeded.Guests = 9
	require.NoError(t, drafts.Save(context.Background(), seeded))

	_, err = svc.Advance(context.Background(), draft.ID, testSession())
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "guests", ferr.Field)
}

func TestAdvanceDetailsRejectsPastCheckIn(t *testing.T) {
	svc, drafts := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	seeded, err := drafts.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	seeded.CheckIn = models.NewDate(2024, time.May, 20)
	seeded.CheckOut = models.NewDate(2024, time.May, 22)
	require.NoError(t, drafts.Save(context.Background(), seeded))

	_, err = svc.Advance(context.Background(), draft.ID, testSession())
	var ferr *models.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "checkInDate", ferr.Field)
}

func TestAdvanceToGuestInfoNeedsSession(t *testing.T) {
	svc, drafts := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	_, err = svc.Advance(context.Background(), draft.ID, nil)
	assert.ErrorIs(t, err, ErrAuthRequired)

	// The step must not have moved.
	stored, err := drafts.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, stored.Step)

	advanced, err := svc.Advance(context.Background(), draft.ID, testSession())
	require.NoError(t, err)
	assert.Equal(t, models.StepGuestInfo, advanced.Step)
}

func TestAdvanceGuestInfoRequiresPhone(t *testing.T) {
	svc, drafts := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, testSession())
	require.NoError(t, err)
	require.Equal(t, models.StepGuestInfo, draft.Step)

	_, err = svc.Advance(context.Background(), draft.ID, testSession())
	var ferr *models.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "phone", ferr.Field)

	stored, err := drafts.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepGuestInfo, stored.Step)

	phone := "+66 81 234 5678"
	_, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{Phone: &phone})
	require.NoError(t, err)

	advanced, err := svc.Advance(context.Background(), draft.ID, testSession())
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, advanced.Step)
}

func TestDateChangeClearsRoomSelection(t *testing.T) {
	svc, drafts := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, nil)
	require.NoError(t, err)

	seeded, err := drafts.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	seeded.Availability = &models.Availability{
		State:     models.AvailabilityAvailable,
		Total:     5,
		Available: 2,
		Rooms:     []string{"DLX01", "DLX02"},
		CheckIn:   seeded.CheckIn,
		CheckOut:  seeded.CheckOut,
		RoomType:  1,
	}
	require.NoError(t, drafts.Save(context.Background(), seeded))

	room := "DLX02"
	updated, err := svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{RoomNumber: &room})
	require.NoError(t, err)
	assert.Equal(t, "DLX02", updated.RoomNumber)

	// Picking a room outside the available set is refused.
	bad := "DLX99"
	_, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{RoomNumber: &bad})
	var ferr *models.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "roomNumber", ferr.Field)

	checkIn := models.NewDate(2024, time.June, 10)
	updated, err = svc.UpdateDraft(context.Background(), draft.ID, DraftUpdate{CheckIn: &checkIn})
	require.NoError(t, err)
	assert.Empty(t, updated.RoomNumber)
	assert.Nil(t, updated.Availability)
}

func TestBackNeverLeavesWizard(t *testing.T) {
	svc, _ := newTestWizard(t)
	draft, err := svc.CreateDraft(context.Background(), 1, testSession())
	require.NoError(t, err)

	back, err := svc.Back(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, back.Step)

	back, err = svc.Back(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, back.Step)
}
