package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

type VisitorsHandler struct {
	screen *screens.Visitors
}

func NewVisitorsHandler(screen *screens.Visitors) *VisitorsHandler {
	return &VisitorsHandler{screen: screen}
}

// List loads the filter options and, when ?exhibitionId= is present,
// the visitors of that exhibition.
func (h *VisitorsHandler) List(ctx *gin.Context) {
	h.screen.FetchFilters(ctx.Request.Context())

	if raw := ctx.Query("exhibitionId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			RespondBadRequest(ctx, "Invalid exhibitionId", nil)
			return
		}
		h.screen.SelectExhibition(ctx.Request.Context(), id)
	}

	ctx.JSON(http.StatusOK, h.screen.State())
}

func (h *VisitorsHandler) Create(ctx *gin.Context) {
	var form screens.VisitorForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed visitor payload", nil)
		return
	}

	h.screen.OpenCreate()
	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

// Delete only hides the row for this console session; the record
// itself stays on the backend.
func (h *VisitorsHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	h.screen.RequestDelete(id)
	h.screen.ConfirmDelete()
	ctx.JSON(http.StatusOK, h.screen.State())
}
