package handler

import (
	"net/http"

	model "auction-front/internal/models"
	"auction-front/services/auction/helpers"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler handles GET /notifications
func (h *AuctionHandler) ListNotificationsHandler(c *gin.Context) {
	resp := helpers.NotificationsResponse{
		Notifications: h.service.Notifications(),
		UnreadCount:   h.service.UnreadCount(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
}

// AddNotificationHandler handles POST /notifications
func (h *AuctionHandler) AddNotificationHandler(c *gin.Context) {
	var req helpers.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddNotificationHandler", err)
		return
	}

	n, err := h.service.AddNotification(c.Request.Context(), req.Message, model.NotificationType(req.Type))
	if err != nil {
		helpers.HandleServiceError(c, "AddNotificationHandler", "failed to add notification", err, map[string]any{"type": req.Type})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, n, "notification added")
}

// MarkNotificationReadHandler handles POST /notifications/:id/read.
// Unknown IDs are accepted and change nothing.
func (h *AuctionHandler) MarkNotificationReadHandler(c *gin.Context) {
	notificationID := c.Param("id")
	h.service.MarkNotificationAsRead(c.Request.Context(), notificationID)

	resp := helpers.NotificationsResponse{
		Notifications: h.service.Notifications(),
		UnreadCount:   h.service.UnreadCount(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "notification marked as read")
}

// MarkAllNotificationsReadHandler handles POST /notifications/read
func (h *AuctionHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	marked := h.service.MarkAllNotificationsRead(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, helpers.MarkAllReadResponse{Marked: marked}, "notifications marked as read")
}
