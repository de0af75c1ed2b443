package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"hotel-portal/models"
)

func (c *Client) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var payload []roomTypePayload
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/room-types", "", nil, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]models.RoomType, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toModel())
	}
	return out, nil
}

func (c *Client) GetRoomType(ctx context.Context, id uint) (models.RoomType, error) {
	var payload roomTypePayload
	url := fmt.Sprintf("%s/room-types/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, url, "", nil, nil, &payload); err != nil {
		return models.RoomType{}, err
	}
	return payload.toModel(), nil
}

// CheckAvailability asks for free rooms of one type over [checkIn, checkOut).
// A transport failure is returned as-is; the availability service maps it to
// the Unknown state rather than inventing counts.
func (c *Client) CheckAvailability(ctx context.Context, roomTypeID uint, checkIn, checkOut models.Date) (models.Availability, error) {
	q := url.Values{}
	q.Set("checkInDate", checkIn.String())
	q.Set("checkOutDate", checkOut.String())
	target := fmt.Sprintf("%s/rooms/%d/availability?%s", c.baseURL, roomTypeID, q.Encode())

	var payload availabilityPayload
	if err := c.do(ctx, http.MethodGet, target, "", nil, nil, &payload); err != nil {
		return models.Availability{}, err
	}
	a := payload.toModel()
	a.RoomType = roomTypeID
	a.CheckIn = checkIn
	a.CheckOut = checkOut
	return a, nil
}

type CreateBookingRequest struct {
	RoomTypeID      uint   `json:"roomTypeId"`
	RoomNumber      string `json:"roomNumber,omitempty"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	Guests          int    `json:"guests"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	TotalPrice      int64  `json:"totalPrice"`
}

func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (models.Booking, error) {
	var payload bookingPayload
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/bookings", token, nil, req, &payload); err != nil {
		return models.Booking{}, err
	}
	return payload.toModel()
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var payload []bookingPayload
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/bookings/my-bookings", token, nil, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(payload))
	for _, p := range payload {
		b, err := p.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: bad booking payload", ErrUnavailable)
		}
		out = append(out, b)
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (models.Booking, error) {
	var payload bookingPayload
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/bookings/"+url.PathEscape(id), token, nil, nil, &payload); err != nil {
		return models.Booking{}, err
	}
	return payload.toModel()
}

// CancelBooking sends the cancel with an idempotency key so a retried or
// double-submitted cancel lands on the backend as the same request.
func (c *Client) CancelBooking(ctx context.Context, token, id, reason, idempotencyKey string) (models.Booking, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	var payload bookingPayload
	target := c.baseURL + "/bookings/" + url.PathEscape(id) + "/cancel"
	if err := c.do(ctx, http.MethodPatch, target, token, headers, body, &payload); err != nil {
		return models.Booking{}, err
	}
	return payload.toModel()
}
