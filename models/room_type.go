package models

// RoomType is reference data owned by the booking backend. The portal never
// mutates it; the client maps whatever field spelling the backend uses into
// this one shape at the network boundary.
type RoomType struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"pricePerNight"` // minor currency units
	MaxGuests     int      `json:"maxGuests"`
	ImageURL      string   `json:"imageUrl"`
	Amenities     []string `json:"amenities"`
	DisplayOrder  int      `json:"displayOrder"`
}
