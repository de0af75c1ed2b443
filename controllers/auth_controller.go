package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-portal/middleware"
	"hotel-portal/services"
	"hotel-portal/utils"
)

type AuthController struct {
	sessions *services.SessionService
}

func NewAuthController(sessions *services.SessionService) *AuthController {
	return &AuthController{sessions: sessions}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	sess, err := ac.sessions.Login(c.Request.Context(), email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sess)
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	sess, err := ac.sessions.Register(c.Request.Context(), strings.TrimSpace(payload.Name), strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sess)
}

func (ac *AuthController) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sess.User)
}

func (ac *AuthController) Refresh(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		utils.JSONError(c, http.StatusUnauthorized, "session_expired")
		return
	}
	refreshed, err := ac.sessions.Refresh(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, refreshed)
}

func (ac *AuthController) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess != nil {
		if err := ac.sessions.Logout(c.Request.Context(), sess.ID); err != nil {
			respondError(c, err)
			return
		}
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}
