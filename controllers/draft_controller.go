package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-portal/middleware"
	"hotel-portal/services"
	"hotel-portal/utils"
)

// DraftController exposes the booking wizard: draft lifecycle, step
// transitions, availability refresh and the final checkout handoff.
type DraftController struct {
	wizard       *services.WizardService
	availability *services.AvailabilityService
	checkout     *services.CheckoutService
}

func NewDraftController(wizard *services.WizardService, availability *services.AvailabilityService, checkout *services.CheckoutService) *DraftController {
	return &DraftController{wizard: wizard, availability: availability, checkout: checkout}
}

type createDraftPayload struct {
	RoomTypeID uint `json:"roomTypeId"`
}

func (dc *DraftController) CreateDraft(c *gin.Context) {
	var payload createDraftPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.RoomTypeID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "roomTypeId is required")
		return
	}

	draft, err := dc.wizard.CreateDraft(c.Request.Context(), payload.RoomTypeID, middleware.SessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, draft)
}

func (dc *DraftController) GetDraft(c *gin.Context) {
	draft, err := dc.wizard.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

func (dc *DraftController) UpdateDraft(c *gin.Context) {
	var upd services.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	draft, err := dc.wizard.UpdateDraft(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

func (dc *DraftController) DeleteDraft(c *gin.Context) {
	if err := dc.wizard.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

func (dc *DraftController) Advance(c *gin.Context) {
	draft, err := dc.wizard.Advance(c.Request.Context(), c.Param("id"), middleware.SessionFrom(c))
	if err != nil {
		if errors.Is(err, services.ErrAuthRequired) {
			utils.JSONAuthRequired(c, draft)
			return
		}
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

func (dc *DraftController) Back(c *gin.Context) {
	draft, err := dc.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, draft)
}

// GetAvailability refreshes and returns the snapshot for the draft's current
// parameters. A superseded response answers 409 and the caller re-queries;
// the stale result is never applied.
func (dc *DraftController) GetAvailability(c *gin.Context) {
	draft, err := dc.wizard.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	snapshot, err := dc.availability.Refresh(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snapshot)
}

func (dc *DraftController) Checkout(c *gin.Context) {
	var payment services.PaymentInput
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	sess := middleware.SessionFrom(c)
	result, err := dc.checkout.Checkout(c.Request.Context(), c.Param("id"), sess, payment)
	if err != nil {
		if errors.Is(err, services.ErrAuthRequired) {
			draft, getErr := dc.wizard.GetDraft(c.Request.Context(), c.Param("id"))
			if getErr != nil {
				respondError(c, getErr)
				return
			}
			utils.JSONAuthRequired(c, draft)
			return
		}

		var payFailed *services.PaymentFailedError
		if errors.As(err, &payFailed) {
			respondPaymentFailure(c, payFailed)
			return
		}
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// respondPaymentFailure keeps the created booking visible in the error body:
// the booking exists server-side, only the payment needs retrying.
func respondPaymentFailure(c *gin.Context, failure *services.PaymentFailedError) {
	title := "Payment failed"
	message := failure.Cause.Error()
	var payErr *services.PaymentError
	if errors.As(failure.Cause, &payErr) {
		title = payErr.Title
		message = payErr.Message
	}

	c.JSON(http.StatusPaymentRequired, gin.H{
		"success": false,
		"error":   message,
		"title":   title,
		"data":    gin.H{"booking": failure.Booking},
	})
}
