// Package services holds the portal's domain logic: the booking wizard state
// machine, availability queries, bookings list/cancellation, payment handling
// and session lifecycle. Controllers stay thin; everything testable is here.
package services

import (
	"context"
	"errors"

	"hotel-portal/client"
	"hotel-portal/models"
)

var (
	// ErrAuthRequired means the wizard reached a step that needs a session.
	// The controller answers 401 with the draft attached so login can resume
	// the flow.
	ErrAuthRequired = errors.New("auth_required")

	// ErrSuperseded marks an availability response whose parameters are no
	// longer the selected ones. The result must be dropped, never applied.
	ErrSuperseded = errors.New("superseded")

	ErrNotCancellable = errors.New("booking_not_cancellable")
	ErrCancelInFlight = errors.New("cancel_in_flight")
)

// DraftRepo and SessionRepo are implemented by the Redis store package.
type DraftRepo interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Save(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Narrow views of the backend client, one per consumer.
type RoomTypeAPI interface {
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
	GetRoomType(ctx context.Context, id uint) (models.RoomType, error)
}

type AvailabilityAPI interface {
	CheckAvailability(ctx context.Context, roomTypeID uint, checkIn, checkOut models.Date) (models.Availability, error)
}

type BookingAPI interface {
	MyBookings(ctx context.Context, token string) ([]models.Booking, error)
	GetBooking(ctx context.Context, token, id string) (models.Booking, error)
	CancelBooking(ctx context.Context, token, id, reason, idempotencyKey string) (models.Booking, error)
}

type CheckoutAPI interface {
	CreateBooking(ctx context.Context, token string, req client.CreateBookingRequest) (models.Booking, error)
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Register(ctx context.Context, name, email, password string) (string, models.User, error)
	Me(ctx context.Context, token string) (models.User, error)
}

type PaymentAPI interface {
	ProcessPayment(ctx context.Context, token string, req client.PaymentRequest) (client.PaymentResult, error)
}
