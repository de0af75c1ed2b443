package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-portal/models"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldError reports a client-side validation failure. The field tells the
// UI which input to highlight and focus.
func JSONFieldError(c *gin.Context, err *models.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error":   err.Message,
		"field":   err.Field,
	})
}

// JSONAuthRequired carries the current draft along with the 401 so the wizard
// can resume where it left off after login.
func JSONAuthRequired(c *gin.Context, draft *models.BookingDraft) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "auth_required",
		"data":    draft,
	})
}
