package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking is the server-owned record, read-only here except for the explicit
// cancel action. There is exactly one identifier field; legacy spellings
// (bookingId / booking_id) are folded into ID by the client and nowhere else.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	RoomTypeID      uint          `json:"roomTypeId"`
	RoomTypeName    string        `json:"roomTypeName,omitempty"`
	RoomNumber      string        `json:"roomNumber"`
	CheckIn         Date          `json:"checkInDate"`
	CheckOut        Date          `json:"checkOutDate"`
	Guests          int           `json:"guests"`
	TotalPrice      int64         `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Cancellable reports whether the user may still cancel this booking.
func (b Booking) Cancellable() bool {
	return b.Status != BookingCancelled && b.Status != BookingCompleted
}

// BookingWindow buckets a booking list relative to "today".
type BookingWindow string

const (
	WindowAll      BookingWindow = "all"
	WindowUpcoming BookingWindow = "upcoming"
	WindowCurrent  BookingWindow = "current"
	WindowPast     BookingWindow = "past"
)

func ParseBookingWindow(s string) (BookingWindow, bool) {
	switch BookingWindow(s) {
	case WindowAll, "":
		return WindowAll, true
	case WindowUpcoming:
		return WindowUpcoming, true
	case WindowCurrent:
		return WindowCurrent, true
	case WindowPast:
		return WindowPast, true
	}
	return "", false
}

// InWindow applies the date bucket for a given today (midnight). Cancelled
// bookings stay in whatever bucket their dates put them in.
func (b Booking) InWindow(w BookingWindow, today Date) bool {
	switch w {
	case WindowUpcoming:
		return b.CheckIn.After(today.Time)
	case WindowCurrent:
		return !b.CheckIn.After(today.Time) && !b.CheckOut.Before(today.Time)
	case WindowPast:
		return b.CheckOut.Before(today.Time)
	default:
		return true
	}
}
