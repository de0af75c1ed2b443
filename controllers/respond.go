package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-portal/client"
	"hotel-portal/models"
	"hotel-portal/services"
	"hotel-portal/store"
	"hotel-portal/utils"
)

// respondError maps domain errors onto the response envelope in one place so
// controllers stay thin. Transport failures and business rejections both end
// up as a user-visible error with prior state untouched.
func respondError(c *gin.Context, err error) {
	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		utils.JSONFieldError(c, fieldErr)
		return
	}

	var rejected *client.RejectedError
	if errors.As(err, &rejected) {
		utils.JSONError(c, http.StatusBadRequest, rejected.Message)
		return
	}

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
	case errors.Is(err, client.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found")
	case errors.Is(err, store.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "draft_not_found")
	case errors.Is(err, store.ErrSessionNotFound):
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
	case errors.Is(err, services.ErrNotCancellable):
		utils.JSONError(c, http.StatusConflict, "booking can no longer be cancelled")
	case errors.Is(err, services.ErrCancelInFlight):
		utils.JSONError(c, http.StatusConflict, "cancellation already in progress")
	case errors.Is(err, services.ErrSuperseded):
		utils.JSONError(c, http.StatusConflict, "superseded by newer parameters")
	case errors.Is(err, client.ErrUnavailable):
		utils.JSONError(c, http.StatusBadGateway, "service temporarily unavailable")
	default:
		logrus.WithError(err).Error("unhandled error")
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
