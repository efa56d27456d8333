package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/notify"
)

// NotificationsHandler drains the toast queue. Each notification is
// delivered exactly once.
type NotificationsHandler struct {
	hub *notify.Hub
}

func NewNotificationsHandler(hub *notify.Hub) *NotificationsHandler {
	return &NotificationsHandler{hub: hub}
}

func (h *NotificationsHandler) Drain(ctx *gin.Context) {
	notes := h.hub.Drain()
	if notes == nil {
		notes = []notify.Notification{}
	}
	ctx.JSON(http.StatusOK, gin.H{"notifications": notes})
}
