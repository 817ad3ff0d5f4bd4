package handlers

import (
	"net/http"

	"egarage/models"
	"egarage/services/auth"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

// Signup registers a new account and returns a token plus the account summary.
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Signup(req)
	if err != nil {
		logger.Warn("Signup failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an account by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
