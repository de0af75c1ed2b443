package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/client"
	"hotel-portal/models"
	"hotel-portal/store"
)

func newTestCheckout(t *testing.T, payAPI PaymentAPI) (*CheckoutService, *memDrafts, *fakeCheckoutAPI) {
	t.Helper()
	drafts := newMemDrafts()
	api := &fakeCheckoutAPI{}
	payments := newTestPaymentService(payAPI)
	wizard := NewWizardService(drafts, &fakeRoomTypeAPI{roomType: deluxeRoomType()}, nil)
	wizard.now = fixedNow
	return NewCheckoutService(drafts, api, payments, nil, wizard), drafts, api
}

func readyDraft(t *testing.T, drafts *memDrafts) *models.BookingDraft {
	t.Helper()
	draft := &models.BookingDraft{
		ID:            "draft-1",
		Step:          models.StepReview,
		SessionID:     "sess-1",
		RoomTypeID:    1,
		RoomTypeCode:  "DLX",
		PricePerNight: 15000,
		MaxGuests:     4,
		CheckIn:       models.NewDate(2024, 6, 10),
		CheckOut:      models.NewDate(2024, 6, 13),
		Guests:        2,
		Phone:         "+66 81 234 5678",
	}
	draft.Reprice()
	require.NoError(t, drafts.Save(context.Background(), draft))
	return draft
}

func TestCheckoutRequiresSession(t *testing.T) {
	svc, drafts, _ := newTestCheckout(t, &fakePaymentAPI{})
	readyDraft(t, drafts)

	_, err := svc.Checkout(context.Background(), "draft-1", nil, PaymentInput{})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCheckoutValidatesWholeDraft(t *testing.T) {
	svc, drafts, _ := newTestCheckout(t, &fakePaymentAPI{})
	draft := readyDraft(t, drafts)
	draft.Phone = ""
	require.NoError(t, drafts.Save(context.Background(), draft))

	card := validCard()
	_, err := svc.Checkout(context.Background(), "draft-1", testSession(), PaymentInput{Card: &card})
	var ferr *models.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "phone", ferr.Field)
}

func TestCheckoutSuccessDiscardsDraft(t *testing.T) {
	payAPI := &fakePaymentAPI{result: client.PaymentResult{TransactionID: "tx-1", Status: "PAID"}}
	svc, drafts, api := newTestCheckout(t, payAPI)
	readyDraft(t, drafts)

	card := validCard()
	result, err := svc.Checkout(context.Background(), "draft-1", testSession(), PaymentInput{Card: &card})
	require.NoError(t, err)

	assert.Equal(t, "bk-1", result.Booking.ID)
	assert.Equal(t, int64(45000), result.Booking.TotalPrice)
	assert.Equal(t, "tx-1", result.Payment.TransactionID)
	require.NotNil(t, api.created)

	_, err = drafts.Get(context.Background(), "draft-1")
	assert.ErrorIs(t, err, store.ErrDraftNotFound)
}

// Payment failing after the booking was created leaves the booking in the
// server's hands; the error keeps the reference so the user can retry.
func TestCheckoutPaymentFailureKeepsBooking(t *testing.T) {
	payAPI := &fakePaymentAPI{err: &client.RejectedError{Message: "card was declined"}}
	svc, drafts, api := newTestCheckout(t, payAPI)
	readyDraft(t, drafts)

	card := validCard()
	_, err := svc.Checkout(context.Background(), "draft-1", testSession(), PaymentInput{Card: &card})

	var failed *PaymentFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "bk-1", failed.Booking.ID)
	require.NotNil(t, api.created)

	var payErr *PaymentError
	require.ErrorAs(t, failed.Cause, &payErr)
	assert.Equal(t, "Card declined", payErr.Title)

	// The draft survives for a retry.
	_, err = drafts.Get(context.Background(), "draft-1")
	assert.NoError(t, err)
}

// A token that dies between booking creation and payment surfaces as the
// session-expired error, not as a payment failure.
func TestCheckoutExpiredTokenDuringPayment(t *testing.T) {
	payAPI := &fakePaymentAPI{err: client.ErrUnauthorized}
	svc, drafts, _ := newTestCheckout(t, payAPI)
	readyDraft(t, drafts)

	card := validCard()
	_, err := svc.Checkout(context.Background(), "draft-1", testSession(), PaymentInput{Card: &card})
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	var failed *PaymentFailedError
	assert.False(t, errors.As(err, &failed))

	_, err = drafts.Get(context.Background(), "draft-1")
	assert.NoError(t, err)
}

func TestCheckoutBackendRejection(t *testing.T) {
	svc, drafts, api := newTestCheckout(t, &fakePaymentAPI{})
	readyDraft(t, drafts)
	api.createErr = &client.RejectedError{Message: "room type sold out"}

	card := validCard()
	_, err := svc.Checkout(context.Background(), "draft-1", testSession(), PaymentInput{Card: &card})
	var rejected *client.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "room type sold out", rejected.Message)
}
