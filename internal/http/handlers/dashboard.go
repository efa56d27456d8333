package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

type DashboardHandler struct {
	screen *screens.Dashboard
}

func NewDashboardHandler(screen *screens.Dashboard) *DashboardHandler {
	return &DashboardHandler{screen: screen}
}

func (h *DashboardHandler) Summary(ctx *gin.Context) {
	h.screen.Fetch(ctx.Request.Context())

	summary, loaded := h.screen.Summary()
	if !loaded {
		RespondError(ctx, http.StatusServiceUnavailable, "dashboard_unavailable", "Dashboard data could not be loaded", nil)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
