package handlers

import (
	"net/http"

	"egarage/middleware"
	"egarage/models"
	"egarage/services/booking"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, payment confirmation, status and
// listing endpoints for appointments.
type AppointmentHandler struct {
	Service booking.BookingService
}

// Book creates an appointment in pending_payment and returns it together
// with the payment intent the client must confirm.
func (h *AppointmentHandler) Book(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Book(middleware.AccountID(c), req)
	if err != nil {
		logger.Warn("Booking failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ConfirmPayment moves an appointment from pending_payment to pending once
// the caller presents the matching payment transaction id.
func (h *AppointmentHandler) ConfirmPayment(c *gin.Context) {
	logger := getLogger(c)

	var req models.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment confirmation payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Service.ConfirmPayment(middleware.AccountID(c), c.Param("id"), req.TransactionID)
	if err != nil {
		logger.Warn("Payment confirmation failed", zap.String("appointmentId", c.Param("id")), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatus applies a status transition, enforcing role-dependent rules.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Service.Transition(middleware.AccountID(c), middleware.RoleOf(c), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListOwn returns the appointments booked by the authenticated account.
func (h *AppointmentHandler) ListOwn(c *gin.Context) {
	appts, err := h.Service.ListForCustomer(middleware.AccountID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListForProvider returns the appointments addressed to the caller's garage.
func (h *AppointmentHandler) ListForProvider(c *gin.Context) {
	appts, err := h.Service.ListForProvider(middleware.AccountID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListAll returns every appointment in the ledger.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appts, err := h.Service.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// TotalRevenue reports the aggregate revenue across all appointments.
func (h *AppointmentHandler) TotalRevenue(c *gin.Context) {
	report, err := h.Service.TotalRevenue()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
