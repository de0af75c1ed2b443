package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"hotel-portal/client"
	"hotel-portal/events"
	"hotel-portal/models"
)

// CheckoutService finishes the wizard: it creates the booking on the backend
// and then submits payment. The two calls are sequential with no client-side
// rollback; if payment fails the booking stays in whatever state the server
// assigned and the result names it so the user can retry or abandon.
type CheckoutService struct {
	drafts   DraftRepo
	api      CheckoutAPI
	payments *PaymentService
	notifier *events.Notifier
	wizard   *WizardService
}

func NewCheckoutService(drafts DraftRepo, api CheckoutAPI, payments *PaymentService, notifier *events.Notifier, wizard *WizardService) *CheckoutService {
	return &CheckoutService{
		drafts:   drafts,
		api:      api,
		payments: payments,
		notifier: notifier,
		wizard:   wizard,
	}
}

type CheckoutResult struct {
	Booking models.Booking       `json:"booking"`
	Payment client.PaymentResult `json:"payment"`
}

// PaymentFailedError reports a created booking whose payment did not go
// through. The booking reference survives so the user can retry.
type PaymentFailedError struct {
	Booking models.Booking
	Cause   error
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed for booking %s: %v", e.Booking.ID, e.Cause)
}

func (e *PaymentFailedError) Unwrap() error {
	return e.Cause
}

// Checkout validates the whole draft (both earlier gates, regardless of how
// the wizard got here), creates the booking, then pays.
func (s *CheckoutService) Checkout(ctx context.Context, draftID string, sess *models.Session, payment PaymentInput) (*CheckoutResult, error) {
	if sess == nil {
		return nil, ErrAuthRequired
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if ferr := s.wizard.validateDetails(draft); ferr != nil {
		return nil, ferr
	}
	if ferr := validateGuestInfo(draft); ferr != nil {
		return nil, ferr
	}

	booking, err := s.api.CreateBooking(ctx, sess.Token, client.CreateBookingRequest{
		RoomTypeID:      draft.RoomTypeID,
		RoomNumber:      draft.RoomNumber,
		CheckInDate:     draft.CheckIn.String(),
		CheckOutDate:    draft.CheckOut.String(),
		Guests:          draft.Guests,
		Phone:           draft.Phone,
		SpecialRequests: draft.SpecialRequests,
		TotalPrice:      draft.TotalPrice,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, events.BookingEvent{
		Event:      events.EventBookingCreated,
		BookingID:  booking.ID,
		UserID:     sess.User.ID,
		RoomTypeID: booking.RoomTypeID,
	})
	logrus.WithFields(logrus.Fields{"booking": booking.ID, "user": sess.User.ID}).Info("booking created")

	result, err := s.payments.Pay(ctx, sess, booking, payment)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// Session died between booking and payment; surface the 401,
			// the booking stays retrievable under the refreshed session.
			return nil, err
		}
		return nil, &PaymentFailedError{Booking: booking, Cause: err}
	}

	// The wizard is done; the draft has served its purpose.
	if err := s.wizard.DiscardDraft(ctx, draft.ID); err != nil {
		logrus.WithError(err).WithField("draft", draft.ID).Warn("failed to discard draft after checkout")
	}

	return &CheckoutResult{Booking: booking, Payment: result}, nil
}
