package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hotel-portal/events"
	"hotel-portal/models"
)

// BookingService lists a user's bookings with the time-window filter and runs
// the two-phase optimistic cancel: mark locally, call the backend, replace
// with the authoritative record on success, revert on failure.
type BookingService struct {
	api      BookingAPI
	notifier *events.Notifier

	mu         sync.Mutex
	optimistic map[string]models.BookingStatus
	inflight   map[string]bool

	now func() time.Time
}

func NewBookingService(api BookingAPI, notifier *events.Notifier) *BookingService {
	return &BookingService{
		api:        api,
		notifier:   notifier,
		optimistic: make(map[string]models.BookingStatus),
		inflight:   make(map[string]bool),
		now:        time.Now,
	}
}

// List fetches the caller's bookings and applies the window filter. The
// optimistic overlay is applied before filtering so a just-cancelled booking
// reads CANCELLED even while the reconciling fetch is still out.
func (s *BookingService) List(ctx context.Context, sess *models.Session, window models.BookingWindow) ([]models.Booking, error) {
	bookings, err := s.api.MyBookings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(s.now())

	s.mu.Lock()
	for i := range bookings {
		if status, ok := s.optimistic[bookings[i].ID]; ok {
			bookings[i].Status = status
		}
	}
	s.mu.Unlock()

	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.InWindow(window, today) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *BookingService) Get(ctx context.Context, sess *models.Session, id string) (models.Booking, error) {
	b, err := s.api.GetBooking(ctx, sess.Token, id)
	if err != nil {
		return models.Booking{}, err
	}
	s.mu.Lock()
	if status, ok := s.optimistic[b.ID]; ok {
		b.Status = status
	}
	s.mu.Unlock()
	return b, nil
}

// Cancel runs the full cancellation flow for an eligible booking. Concurrent
// cancels of the same booking collapse into one request; the idempotency key
// makes a backend retry safe.
func (s *BookingService) Cancel(ctx context.Context, sess *models.Session, id, reason string) (models.Booking, error) {
	booking, err := s.api.GetBooking(ctx, sess.Token, id)
	if err != nil {
		return models.Booking{}, err
	}
	if !booking.Cancellable() {
		return booking, ErrNotCancellable
	}

	s.mu.Lock()
	if s.inflight[id] {
		s.mu.Unlock()
		return booking, ErrCancelInFlight
	}
	s.inflight[id] = true
	s.optimistic[id] = models.BookingCancelled
	s.mu.Unlock()

	idempotencyKey := uuid.NewString()
	cancelled, err := s.api.CancelBooking(ctx, sess.Token, id, reason, idempotencyKey)

	s.mu.Lock()
	delete(s.inflight, id)
	delete(s.optimistic, id)
	s.mu.Unlock()

	if err != nil {
		// Revert is the deletes above: the next read shows the server state.
		return models.Booking{}, err
	}

	s.notifier.Publish(ctx, events.BookingEvent{
		Event:      events.EventBookingCancelled,
		BookingID:  cancelled.ID,
		UserID:     sess.User.ID,
		RoomTypeID: cancelled.RoomTypeID,
		Reason:     reason,
	})
	logrus.WithFields(logrus.Fields{"booking": cancelled.ID, "user": sess.User.ID}).Info("booking cancelled")

	// Authoritative replace, not a merge.
	return cancelled, nil
}
