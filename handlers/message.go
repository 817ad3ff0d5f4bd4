package handlers

import (
	"net/http"

	"egarage/models"
	"egarage/services/message"
	"egarage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler exposes the contact-message endpoints.
type MessageHandler struct {
	Service message.MessageService
}

// Send accepts a contact message from any visitor.
func (h *MessageHandler) Send(c *gin.Context) {
	logger := getLogger(c)

	var input models.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid message payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	msg, err := h.Service.Send(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// List returns all received contact messages, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.Service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
