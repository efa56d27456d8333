package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

type AccountsHandler struct {
	screen *screens.Accounts
}

func NewAccountsHandler(screen *screens.Accounts) *AccountsHandler {
	return &AccountsHandler{screen: screen}
}

func (h *AccountsHandler) List(ctx *gin.Context) {
	h.screen.FetchAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}

func (h *AccountsHandler) Create(ctx *gin.Context) {
	var form screens.AccountForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed user payload", nil)
		return
	}

	h.screen.OpenCreate()
	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *AccountsHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var form screens.AccountForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed user payload", nil)
		return
	}

	h.screen.OpenEdit(id)
	if h.screen.State().EditingID == nil {
		RespondNotFound(ctx, "User not found")
		return
	}

	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *AccountsHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	h.screen.RequestDelete(id)
	h.screen.ConfirmDelete(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}
