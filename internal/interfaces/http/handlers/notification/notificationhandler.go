// Package notification exposes the notification inbox over HTTP.
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	unreadCountUC usecases.UnreadCountExecutor
	markReadUC    usecases.MarkReadExecutor
	markAllReadUC usecases.MarkAllReadExecutor
	deleteUC      usecases.DeleteNotificationExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	markReadUC usecases.MarkReadExecutor,
	markAllReadUC usecases.MarkAllReadExecutor,
	deleteUC usecases.DeleteNotificationExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		unreadCountUC: unreadCountUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		deleteUC:      deleteUC,
		logger:        logger.NewLogger(),
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Notifications)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		NotificationID: notificationID,
		ActorID:        userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllReadCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", result)
}

// DeleteNotification handles DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteNotificationCommand{
		NotificationID: notificationID,
		ActorID:        c.GetUint(constants.ContextKeyUserID),
		ActorRole:      c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification deleted successfully", result)
}
