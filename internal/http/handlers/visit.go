package handlers

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

// VisitHandler serves the public self-registration form. One form
// controller exists per exhibition, created lazily on the first hit.
type VisitHandler struct {
	mu      sync.Mutex
	newForm func(exhibitionID int64) *screens.Registration
	forms   map[int64]*screens.Registration
}

func NewVisitHandler(newForm func(exhibitionID int64) *screens.Registration) *VisitHandler {
	return &VisitHandler{
		newForm: newForm,
		forms:   make(map[int64]*screens.Registration),
	}
}

func (h *VisitHandler) form(exhibitionID int64) *screens.Registration {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.forms[exhibitionID]
	if !ok {
		f = h.newForm(exhibitionID)
		h.forms[exhibitionID] = f
	}
	return f
}

// loadedForm returns the exhibition's controller with its reference
// data loaded. A controller stuck in the error state retries the load,
// and if it still fails the map entry is dropped so unknown or broken
// exhibitions never pin a controller.
func (h *VisitHandler) loadedForm(ctx context.Context, exhibitionID int64) *screens.Registration {
	f := h.form(exhibitionID)

	if p := f.State().Phase; p == screens.RegistrationLoading || p == screens.RegistrationError {
		f.Load(ctx)
	}
	if f.State().Phase == screens.RegistrationError {
		h.mu.Lock()
		if h.forms[exhibitionID] == f {
			delete(h.forms, exhibitionID)
		}
		h.mu.Unlock()
	}
	return f
}

func exhibitionIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("exhibitionId"), 10, 64)
	if err != nil || id <= 0 {
		RespondBadRequest(ctx, "Invalid exhibition id", nil)
		return 0, false
	}
	return id, true
}

func (h *VisitHandler) Show(ctx *gin.Context) {
	id, ok := exhibitionIDParam(ctx)
	if !ok {
		return
	}

	f := h.loadedForm(ctx.Request.Context(), id)

	state := f.State()
	if state.Phase == screens.RegistrationError {
		RespondError(ctx, http.StatusNotFound, "exhibition_unavailable", state.LoadError, nil)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

func (h *VisitHandler) Register(ctx *gin.Context) {
	id, ok := exhibitionIDParam(ctx)
	if !ok {
		return
	}

	var form screens.RegistrationForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed registration payload", nil)
		return
	}

	f := h.loadedForm(ctx.Request.Context(), id)

	if f.Submit(ctx.Request.Context(), form) {
		ctx.JSON(http.StatusCreated, f.State())
		return
	}

	state := f.State()
	switch {
	case state.Phase == screens.RegistrationError:
		RespondError(ctx, http.StatusNotFound, "exhibition_unavailable", state.LoadError, nil)
	case len(state.FieldErrors) > 0:
		RespondError(ctx, http.StatusUnprocessableEntity, "validation_failed", "Please fill in the required fields", gin.H{"fields": state.FieldErrors})
	default:
		RespondError(ctx, http.StatusBadGateway, "registration_failed", state.SubmitError, nil)
	}
}
