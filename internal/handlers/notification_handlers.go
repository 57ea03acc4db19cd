package handlers

import (
	"errors"
	"net/http"

	"isp_billing_backend/internal/services"
	"isp_billing_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler holds the notification service.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// SendEmail handles sending one notification email. Transport failures are
// reported to the caller as 500; nothing about the delivery is persisted.
func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req services.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SendEmail: Failed to bind JSON")
		utils.RespondBadRequest(c, "Invalid request payload")
		return
	}

	messageID, err := h.notificationService.SendNotification(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "SendEmail: Error from notificationService.SendNotification")
		if errors.Is(err, services.ErrNotificationValidation) {
			utils.RespondBadRequest(c, err.Error())
		} else {
			utils.RespondInternalError(c, "Failed to send email")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": messageID})
}
