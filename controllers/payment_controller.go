package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-portal/middleware"
	"hotel-portal/services"
	"hotel-portal/utils"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (pc *PaymentController) GetPaymentMethods(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}

	methods, err := pc.payments.ListMethods(c.Request.Context(), sess.User.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, methods)
}

func (pc *PaymentController) DeletePaymentMethod(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method id")
		return
	}

	if err := pc.payments.DeleteMethod(c.Request.Context(), sess.User.ID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
