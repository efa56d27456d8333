package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/screens"
)

type EmployeesHandler struct {
	screen *screens.Employees
}

func NewEmployeesHandler(screen *screens.Employees) *EmployeesHandler {
	return &EmployeesHandler{screen: screen}
}

func (h *EmployeesHandler) List(ctx *gin.Context) {
	h.screen.FetchAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}

func (h *EmployeesHandler) Create(ctx *gin.Context) {
	var form screens.EmployeeForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed employee payload", nil)
		return
	}

	h.screen.OpenCreate()
	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *EmployeesHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var form screens.EmployeeForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		RespondBadRequest(ctx, "Malformed employee payload", nil)
		return
	}

	h.screen.OpenEdit(id)
	if h.screen.State().EditingID == nil {
		RespondNotFound(ctx, "Employee not found")
		return
	}

	h.screen.SetForm(form)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *EmployeesHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	h.screen.RequestDelete(id)
	h.screen.ConfirmDelete(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}
