package models

// AvailabilityState is deliberately a tri-state. A failed backend query maps
// to Unknown so callers must render "availability unknown" instead of
// fabricating counts.
type AvailabilityState string

const (
	AvailabilityUnknown   AvailabilityState = "unknown"
	AvailabilitySoldOut   AvailabilityState = "sold_out"
	AvailabilityAvailable AvailabilityState = "available"
)

// Availability answers "how many rooms of type T are free for
// [checkIn, checkOut)" for one (room type, date range) pair.
type Availability struct {
	State     AvailabilityState `json:"state"`
	Total     int               `json:"total"`
	Available int               `json:"available"`
	Rooms     []string          `json:"rooms,omitempty"`

	CheckIn  Date `json:"checkInDate"`
	CheckOut Date `json:"checkOutDate"`
	RoomType uint `json:"roomTypeId"`
}

func (a *Availability) HasRoom(number string) bool {
	if a == nil || a.State != AvailabilityAvailable {
		return false
	}
	for _, r := range a.Rooms {
		if r == number {
			return true
		}
	}
	return false
}
