package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-portal/middleware"
	"hotel-portal/models"
	"hotel-portal/services"
	"hotel-portal/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// GetBookings lists the caller's bookings, optionally bucketed with
// ?window=upcoming|current|past|all.
func (bc *BookingController) GetBookings(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}

	window, ok := models.ParseBookingWindow(c.Query("window"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid window, expected upcoming|current|past|all")
		return
	}

	list, err := bc.bookings.List(c.Request.Context(), sess, window)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}

	booking, err := bc.bookings.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type cancelPayload struct {
	Reason string `json:"reason"`
}

// CancelBooking is the one state-changing action on bookings. The explicit
// POST is the confirmed step; eligibility is enforced again server-side.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}

	var payload cancelPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid payload")
			return
		}
	}

	booking, err := bc.bookings.Cancel(c.Request.Context(), sess, c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
