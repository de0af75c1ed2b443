package models

import "time"

// WizardStep is the linear position inside the booking wizard.
type WizardStep int

const (
	StepDetails   WizardStep = 1
	StepGuestInfo WizardStep = 2
	StepReview    WizardStep = 3
)

func (s WizardStep) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepGuestInfo:
		return "guest_info"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// BookingDraft accumulates wizard input before anything is created on the
// backend. It lives in the draft store under a TTL; letting it expire is the
// server-side equivalent of navigating away.
type BookingDraft struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId,omitempty"`
	Step      WizardStep `json:"step"`

	RoomTypeID    uint   `json:"roomTypeId"`
	RoomTypeCode  string `json:"roomTypeCode"`
	PricePerNight int64  `json:"pricePerNight"`
	MaxGuests     int    `json:"maxGuests"`

	CheckIn         Date   `json:"checkInDate"`
	CheckOut        Date   `json:"checkOutDate"`
	Guests          int    `json:"guests"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
	RoomNumber      string `json:"roomNumber"`

	Nights     int   `json:"nights"`
	TotalPrice int64 `json:"totalPrice"`

	// Availability snapshot for the current (dates, room type) pair.
	// Invalidated whenever either changes.
	Availability *Availability `json:"availability,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reprice recomputes nights and total from the current dates. Called on every
// date change so the review step never shows a stale total.
func (d *BookingDraft) Reprice() {
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		d.Nights = 0
		d.TotalPrice = 0
		return
	}
	d.Nights = NightsBetween(d.CheckIn, d.CheckOut)
	d.TotalPrice = d.PricePerNight * int64(d.Nights)
}
