package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

// parseID pulls the numeric :id param; responds 400 itself on garbage.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondBadRequest(ctx, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

type ExhibitionsHandler struct {
	screen *screens.Exhibitions
}

func NewExhibitionsHandler(screen *screens.Exhibitions) *ExhibitionsHandler {
	return &ExhibitionsHandler{screen: screen}
}

func (h *ExhibitionsHandler) List(ctx *gin.Context) {
	h.screen.FetchAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}

func (h *ExhibitionsHandler) Create(ctx *gin.Context) {
	if !h.screen.State().CanMutate {
		RespondError(ctx, http.StatusForbidden, "forbidden", "Only administrators can change exhibitions", nil)
		return
	}

	var form screens.ExhibitionForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed exhibition payload", nil)
		return
	}

	h.screen.OpenCreate()
	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *ExhibitionsHandler) Update(ctx *gin.Context) {
	if !h.screen.State().CanMutate {
		RespondError(ctx, http.StatusForbidden, "forbidden", "Only administrators can change exhibitions", nil)
		return
	}

	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var form screens.ExhibitionForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed exhibition payload", nil)
		return
	}

	h.screen.OpenEdit(id)
	if h.screen.State().EditingID == nil {
		RespondNotFound(ctx, "Exhibition not found")
		return
	}

	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *ExhibitionsHandler) Delete(ctx *gin.Context) {
	if !h.screen.State().CanMutate {
		RespondError(ctx, http.StatusForbidden, "forbidden", "Only administrators can change exhibitions", nil)
		return
	}

	id, ok := parseID(ctx)
	if !ok {
		return
	}

	h.screen.RequestDelete(id)
	h.screen.ConfirmDelete(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}

// respondSubmitOutcome maps a screen submit to HTTP: validation
// failures come back 422 with the offending fields, everything else
// returns the refreshed state (backend failures surface as toasts via
// the notifications drain).
func respondSubmitOutcome(ctx *gin.Context, invalid []string, state any) {
	if len(invalid) > 0 {
		RespondError(ctx, http.StatusUnprocessableEntity, "validation_failed", "Please fill in all required fields", gin.H{"fields": invalid})
		return
	}
	ctx.JSON(http.StatusOK, state)
}
