package client

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"hotel-portal/models"
)

// flexString tolerates backends that send ids as numbers or strings.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// bookingPayload accepts every field spelling seen from backend variants.
// The mapping to the canonical Booking happens once, here, and nowhere else.
type bookingPayload struct {
	ID         flexString `json:"id"`
	BookingID  flexString `json:"bookingId"`
	BookingID2 flexString `json:"booking_id"`

	UserID  flexString `json:"userId"`
	UserID2 flexString `json:"user_id"`

	RoomTypeID   uint       `json:"roomTypeId"`
	RoomTypeID2  uint       `json:"room_type_id"`
	RoomTypeName string     `json:"roomTypeName"`
	RoomTypeObj  *struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"roomType"`

	RoomNumber  string `json:"roomNumber"`
	RoomNumber2 string `json:"room_number"`

	CheckIn   string `json:"checkInDate"`
	CheckIn2  string `json:"check_in_date"`
	CheckIn3  string `json:"checkIn"`
	CheckOut  string `json:"checkOutDate"`
	CheckOut2 string `json:"check_out_date"`
	CheckOut3 string `json:"checkOut"`

	Guests  int `json:"guests"`
	Guests2 int `json:"numberOfGuests"`
	Guests3 int `json:"number_of_guests"`

	TotalPrice  int64 `json:"totalPrice"`
	TotalPrice2 int64 `json:"total_price"`

	Status string `json:"status"`

	SpecialRequests  string `json:"specialRequests"`
	SpecialRequests2 string `json:"special_requests"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p bookingPayload) toModel() (models.Booking, error) {
	b := models.Booking{
		ID:              firstNonEmpty(string(p.ID), string(p.BookingID), string(p.BookingID2)),
		UserID:          firstNonEmpty(string(p.UserID), string(p.UserID2)),
		RoomNumber:      firstNonEmpty(p.RoomNumber, p.RoomNumber2),
		Guests:          firstPositive(p.Guests, p.Guests2, p.Guests3),
		Status:          normalizeStatus(p.Status),
		SpecialRequests: firstNonEmpty(p.SpecialRequests, p.SpecialRequests2),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	b.RoomTypeID = p.RoomTypeID
	if b.RoomTypeID == 0 {
		b.RoomTypeID = p.RoomTypeID2
	}
	b.RoomTypeName = p.RoomTypeName
	if p.RoomTypeObj != nil {
		if b.RoomTypeID == 0 {
			b.RoomTypeID = p.RoomTypeObj.ID
		}
		if b.RoomTypeName == "" {
			b.RoomTypeName = p.RoomTypeObj.Name
		}
	}

	b.TotalPrice = p.TotalPrice
	if b.TotalPrice == 0 {
		b.TotalPrice = p.TotalPrice2
	}

	if raw := firstNonEmpty(p.CheckIn, p.CheckIn2, p.CheckIn3); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return b, err
		}
		b.CheckIn = d
	}
	if raw := firstNonEmpty(p.CheckOut, p.CheckOut2, p.CheckOut3); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return b, err
		}
		b.CheckOut = d
	}
	return b, nil
}

func normalizeStatus(s string) models.BookingStatus {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "CANCELED" {
		up = "CANCELLED"
	}
	if up == "" {
		up = string(models.BookingPending)
	}
	return models.BookingStatus(up)
}

type roomTypePayload struct {
	ID  uint `json:"id"`
	ID2 uint `json:"roomTypeId"`

	Name  string `json:"name"`
	Name2 string `json:"typeName"`
	Name3 string `json:"type_name"`

	Code  string `json:"code"`
	Code2 string `json:"typeCode"`

	Description string `json:"description"`

	Price  int64 `json:"pricePerNight"`
	Price2 int64 `json:"price_per_night"`
	Price3 int64 `json:"basePrice"`

	MaxGuests  int `json:"maxGuests"`
	MaxGuests2 int `json:"max_guests"`
	MaxGuests3 int `json:"capacity"`

	ImageURL  string `json:"imageUrl"`
	ImageURL2 string `json:"image_url"`

	Amenities []string `json:"amenities"`

	DisplayOrder  int `json:"displayOrder"`
	DisplayOrder2 int `json:"display_order"`
}

func (p roomTypePayload) toModel() models.RoomType {
	rt := models.RoomType{
		ID:            p.ID,
		Name:          firstNonEmpty(p.Name, p.Name2, p.Name3),
		Code:          firstNonEmpty(p.Code, p.Code2),
		Description:   p.Description,
		PricePerNight: p.Price,
		MaxGuests:     firstPositive(p.MaxGuests, p.MaxGuests2, p.MaxGuests3),
		ImageURL:      firstNonEmpty(p.ImageURL, p.ImageURL2),
		Amenities:     p.Amenities,
		DisplayOrder:  firstPositive(p.DisplayOrder, p.DisplayOrder2),
	}
	if rt.ID == 0 {
		rt.ID = p.ID2
	}
	if rt.PricePerNight == 0 {
		rt.PricePerNight = p.Price2
	}
	if rt.PricePerNight == 0 {
		rt.PricePerNight = p.Price3
	}
	if rt.Amenities == nil {
		rt.Amenities = []string{}
	}
	return rt
}

type availabilityPayload struct {
	Total  int `json:"total"`
	Total2 int `json:"totalRooms"`

	Available  int `json:"available"`
	Available2 int `json:"availableRooms"`
	Available3 int `json:"availableCount"`

	SoldOut  bool `json:"soldOut"`
	SoldOut2 bool `json:"sold_out"`

	Rooms  []string `json:"rooms"`
	Rooms2 []string `json:"roomNumbers"`
	Rooms3 []string `json:"availableRoomNumbers"`
}

func (p availabilityPayload) toModel() models.Availability {
	a := models.Availability{
		Total:     firstPositive(p.Total, p.Total2),
		Available: firstPositive(p.Available, p.Available2, p.Available3),
	}
	for _, rooms := range [][]string{p.Rooms, p.Rooms2, p.Rooms3} {
		if len(rooms) > 0 {
			a.Rooms = rooms
			break
		}
	}
	if len(a.Rooms) > a.Available {
		a.Available = len(a.Rooms)
	}
	if p.SoldOut || p.SoldOut2 || a.Available == 0 {
		a.State = models.AvailabilitySoldOut
		a.Available = 0
		a.Rooms = nil
	} else {
		a.State = models.AvailabilityAvailable
	}
	return a
}
