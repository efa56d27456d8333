package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techexpo/console/internal/backend"
	"github.com/techexpo/console/internal/screens"
)

type ProductsHandler struct {
	screen *screens.Products
}

func NewProductsHandler(screen *screens.Products) *ProductsHandler {
	return &ProductsHandler{screen: screen}
}

func (h *ProductsHandler) List(ctx *gin.Context) {
	h.screen.FetchAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}

// productForm reads the multipart body: a "product" JSON part plus an
// optional "file" attachment, the same shape the backend consumes.
func productForm(ctx *gin.Context) (screens.ProductForm, *backend.Upload, bool) {
	var form screens.ProductForm

	raw := ctx.PostForm("product")
	if raw == "" {
		RespondBadRequest(ctx, "Missing product part", nil)
		return form, nil, false
	}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		RespondBadRequest(ctx, "Malformed product payload", nil)
		return form, nil, false
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		// no attachment is fine
		return form, nil, true
	}

	f, err := header.Open()
	if err != nil {
		RespondBadRequest(ctx, "Unreadable attachment", nil)
		return form, nil, false
	}

	return form, &backend.Upload{Filename: header.Filename, Reader: f}, true
}

func closeUpload(u *backend.Upload) {
	if u == nil {
		return
	}
	if c, ok := u.Reader.(io.Closer); ok {
		_ = c.Close()
	}
}

func (h *ProductsHandler) Create(ctx *gin.Context) {
	form, upload, ok := productForm(ctx)
	if !ok {
		return
	}
	defer closeUpload(upload)

	h.screen.OpenCreate()
	h.screen.SetForm(form, upload)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *ProductsHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	form, upload, ok := productForm(ctx)
	if !ok {
		return
	}
	defer closeUpload(upload)

	h.screen.OpenEdit(id)
	if h.screen.State().EditingID == nil {
		RespondNotFound(ctx, "Product not found")
		return
	}

	h.screen.SetForm(form, upload)
	h.screen.Submit(ctx.Request.Context())

	respondSubmitOutcome(ctx, h.screen.State().Invalid, h.screen.State())
}

func (h *ProductsHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	h.screen.RequestDelete(id)
	h.screen.ConfirmDelete(ctx.Request.Context())
	ctx.JSON(http.StatusOK, h.screen.State())
}
