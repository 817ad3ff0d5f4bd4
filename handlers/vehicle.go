package handlers

import (
	"net/http"

	"egarage/middleware"
	"egarage/models"
	"egarage/services/vehicle"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler exposes the vehicle registry endpoints.
type VehicleHandler struct {
	Service vehicle.VehicleService
}

// Add registers a vehicle under the authenticated account.
func (h *VehicleHandler) Add(c *gin.Context) {
	logger := getLogger(c)

	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid vehicle payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	v, err := h.Service.Add(middleware.AccountID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ListOwn returns the vehicles registered to the authenticated account.
func (h *VehicleHandler) ListOwn(c *gin.Context) {
	vehicles, err := h.Service.ListByOwner(middleware.AccountID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get fetches a single vehicle if the caller owns it or is an admin.
func (h *VehicleHandler) Get(c *gin.Context) {
	v, err := h.Service.Get(middleware.AccountID(c), middleware.RoleOf(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Update replaces a vehicle's details, subject to ownership checks.
func (h *VehicleHandler) Update(c *gin.Context) {
	logger := getLogger(c)

	var input models.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid vehicle payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	v, err := h.Service.Update(middleware.AccountID(c), middleware.RoleOf(c), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete removes a vehicle, subject to ownership checks.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(middleware.AccountID(c), middleware.RoleOf(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
