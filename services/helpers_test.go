package services

import (
	"context"
	"sync"
	"time"

	"hotel-portal/client"
	"hotel-portal/models"
	"hotel-portal/store"
)

var testNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

func deluxeRoomType() models.RoomType {
	return models.RoomType{
		ID:            1,
		Name:          "Deluxe",
		Code:          "DLX",
		PricePerNight: 15000,
		MaxGuests:     4,
	}
}

// memDrafts is an in-memory DraftRepo. Get hands out copies so tests observe
// exactly what was saved, the way the Redis store behaves.
type memDrafts struct {
	mu sync.Mutex
	m  map[string]models.BookingDraft
}

func newMemDrafts() *memDrafts {
	return &memDrafts{m: make(map[string]models.BookingDraft)}
}

func (r *memDrafts) Save(_ context.Context, draft *models.BookingDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[draft.ID] = *draft
	return nil
}

func (r *memDrafts) Get(_ context.Context, id string) (*models.BookingDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.m[id]
	if !ok {
		return nil, store.ErrDraftNotFound
	}
	cp := d
	return &cp, nil
}

func (r *memDrafts) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	return nil
}

type memSessions struct {
	mu sync.Mutex
	m  map[string]models.Session
}

func newMemSessions() *memSessions {
	return &memSessions{m: make(map[string]models.Session)}
}

func (r *memSessions) Save(_ context.Context, sess *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[sess.ID] = *sess
	return nil
}

func (r *memSessions) Get(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.m[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	cp := s
	return &cp, nil
}

func (r *memSessions) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	return nil
}

type fakeRoomTypeAPI struct {
	roomType models.RoomType
}

func (f *fakeRoomTypeAPI) ListRoomTypes(context.Context) ([]models.RoomType, error) {
	return []models.RoomType{f.roomType}, nil
}

func (f *fakeRoomTypeAPI) GetRoomType(context.Context, uint) (models.RoomType, error) {
	return f.roomType, nil
}

type fakeAvailabilityAPI struct {
	fn func(ctx context.Context, roomTypeID uint, checkIn, checkOut models.Date) (models.Availability, error)
}

func (f *fakeAvailabilityAPI) CheckAvailability(ctx context.Context, roomTypeID uint, checkIn, checkOut models.Date) (models.Availability, error) {
	return f.fn(ctx, roomTypeID, checkIn, checkOut)
}

type fakeBookingAPI struct {
	mu        sync.Mutex
	bookings  map[string]models.Booking
	cancelErr error
}

func newFakeBookingAPI(bookings ...models.Booking) *fakeBookingAPI {
	m := make(map[string]models.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingAPI{bookings: m}
}

func (f *fakeBookingAPI) MyBookings(context.Context, string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingAPI) GetBooking(_ context.Context, _ string, id string) (models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return models.Booking{}, client.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookingAPI) CancelBooking(_ context.Context, _ string, id, _, _ string) (models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelErr != nil {
		return models.Booking{}, f.cancelErr
	}
	b := f.bookings[id]
	b.Status = models.BookingCancelled
	f.bookings[id] = b
	return b, nil
}

type fakeCheckoutAPI struct {
	created   *models.Booking
	createErr error
}

func (f *fakeCheckoutAPI) CreateBooking(_ context.Context, _ string, req client.CreateBookingRequest) (models.Booking, error) {
	if f.createErr != nil {
		return models.Booking{}, f.createErr
	}
	checkIn, _ := models.ParseDate(req.CheckInDate)
	checkOut, _ := models.ParseDate(req.CheckOutDate)
	b := models.Booking{
		ID:         "bk-1",
		RoomTypeID: req.RoomTypeID,
		RoomNumber: req.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
		Status:     models.BookingPending,
	}
	f.created = &b
	return b, nil
}

type fakePaymentAPI struct {
	result client.PaymentResult
	err    error
	calls  int
}

func (f *fakePaymentAPI) ProcessPayment(context.Context, string, client.PaymentRequest) (client.PaymentResult, error) {
	f.calls++
	if f.err != nil {
		return client.PaymentResult{}, f.err
	}
	return f.result, nil
}

type fakeAuthAPI struct {
	token string
	user  models.User
	meErr error
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (string, models.User, error) {
	return f.token, f.user, nil
}

func (f *fakeAuthAPI) Register(context.Context, string, string, string) (string, models.User, error) {
	return f.token, f.user, nil
}

func (f *fakeAuthAPI) Me(context.Context, string) (models.User, error) {
	if f.meErr != nil {
		return models.User{}, f.meErr
	}
	return f.user, nil
}

func testSession() *models.Session {
	return &models.Session{
		ID:    "sess-1",
		Token: "backend-token",
		User:  models.User{ID: "u-1", Name: "Guest User", Email: "guest@example.com"},
	}
}

func validCard() models.CardInput {
	return models.CardInput{
		Number:      "4111 1111 1111 1111",
		Holder:      "Guest User",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}
}
