package handlers

import (
	"net/http"

	"egarage/middleware"
	"egarage/models"
	"egarage/services/provider"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes the service-provider directory endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

// Register creates the provider profile for the authenticated account.
func (h *ProviderHandler) Register(c *gin.Context) {
	logger := getLogger(c)

	var input models.ProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid provider payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	p, err := h.Service.Register(middleware.AccountID(c), input)
	if err != nil {
		logger.Warn("Provider registration failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List returns providers matching the optional state, city and speciality
// query filters.
func (h *ProviderHandler) List(c *gin.Context) {
	var filter models.ProviderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	providers, err := h.Service.List(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
