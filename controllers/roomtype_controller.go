package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-portal/services"
	"hotel-portal/utils"
)

// RoomTypeController proxies the backend's reference data; the portal adds
// nothing beyond the canonical field mapping done in the client.
type RoomTypeController struct {
	api services.RoomTypeAPI
}

func NewRoomTypeController(api services.RoomTypeAPI) *RoomTypeController {
	return &RoomTypeController{api: api}
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.api.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rc *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room type id")
		return
	}
	rt, err := rc.api.GetRoomType(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}
