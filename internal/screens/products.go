package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/backend"
	"github.com/techexpo/console/internal/domain/product"
	"github.com/techexpo/console/internal/notify"
)

type ProductAPI interface {
	Products(ctx context.Context) ([]product.Product, error)
	CreateProduct(ctx context.Context, p product.Payload, attachment *backend.Upload) (product.Product, error)
	UpdateProduct(ctx context.Context, id int64, p product.Payload, attachment *backend.Upload) (product.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AttachmentPreviewURL(filename string) string
	AttachmentDownloadURL(filename string) string
}

type ProductForm struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Products is an admin-only screen; the route guard keeps USER out
// before any handler runs.
type Products struct {
	mu       sync.Mutex
	api      ProductAPI
	notifier notify.Notifier

	list       []product.Product
	form       ProductForm
	attachment *backend.Upload
	invalid    []string
	modalOpen  bool
	editingID  *int64
	deleteID   *int64
	submitting bool
	deleting   bool
}

func NewProducts(api ProductAPI, notifier notify.Notifier) *Products {
	return &Products{api: api, notifier: notifier}
}

func (s *Products) FetchAll(ctx context.Context) {
	items, err := s.api.Products(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch products")))
		return
	}

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
}

func (s *Products) List() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]product.Product(nil), s.list...)
}

func (s *Products) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = nil
	s.form = ProductForm{}
	s.attachment = nil
	s.invalid = nil
	s.modalOpen = true
}

func (s *Products) OpenEdit(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.list {
		if p.ID != id {
			continue
		}
		s.editingID = &id
		s.form = ProductForm{Name: p.Name, Description: p.Description}
		s.attachment = nil
		s.invalid = nil
		s.modalOpen = true
		return
	}
}

// SetForm updates the working copy; attachment may stay nil to keep
// whatever the backend already stores.
func (s *Products) SetForm(form ProductForm, attachment *backend.Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
	s.attachment = attachment
}

func (s *Products) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.editingID = nil
	s.attachment = nil
	s.invalid = nil
}

func (s *Products) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return
	}

	form := s.form
	if fields := invalidFields(form); fields != nil {
		s.invalid = fields
		s.mu.Unlock()
		s.notifier.Notify(notify.Warning("Name and description are required"))
		return
	}
	s.invalid = nil
	s.submitting = true
	editingID := s.editingID
	attachment := s.attachment
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	payload := product.Payload{Name: form.Name, Description: form.Description}

	var err error
	if editingID != nil {
		_, err = s.api.UpdateProduct(ctx, *editingID, payload, attachment)
	} else {
		_, err = s.api.CreateProduct(ctx, payload, attachment)
	}
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to save product")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.modalOpen = false
	s.editingID = nil
	s.attachment = nil
	s.mu.Unlock()

	if editingID != nil {
		s.notifier.Notify(notify.Success("Product updated"))
	} else {
		s.notifier.Notify(notify.Success("Product created"))
	}
}

func (s *Products) RequestDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = &id
}

func (s *Products) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = nil
}

func (s *Products) ConfirmDelete(ctx context.Context) {
	s.mu.Lock()
	if s.deleteID == nil || s.deleting {
		s.mu.Unlock()
		return
	}
	id := *s.deleteID
	s.deleting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.deleting = false
		s.mu.Unlock()
	}()

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to delete product")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.deleteID = nil
	s.mu.Unlock()

	s.notifier.Notify(notify.Success("Product deleted"))
}

// PreviewURL returns the browser-facing preview link, or ok=false when
// the product has no attachment, rendered as an inert placeholder,
// not an error.
func (s *Products) PreviewURL(p product.Product) (string, bool) {
	if p.Attachment == "" {
		return "", false
	}
	return s.api.AttachmentPreviewURL(p.Attachment), true
}

func (s *Products) DownloadURL(p product.Product) (string, bool) {
	if p.Attachment == "" {
		return "", false
	}
	return s.api.AttachmentDownloadURL(p.Attachment), true
}

type ProductsState struct {
	Items      []product.Product `json:"items"`
	ModalOpen  bool              `json:"modalOpen"`
	EditingID  *int64            `json:"editingId,omitempty"`
	DeleteID   *int64            `json:"deleteId,omitempty"`
	Submitting bool              `json:"submitting"`
	Deleting   bool              `json:"deleting"`
	Invalid    []string          `json:"invalidFields,omitempty"`
}

func (s *Products) State() ProductsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProductsState{
		Items:      append([]product.Product(nil), s.list...),
		ModalOpen:  s.modalOpen,
		EditingID:  s.editingID,
		DeleteID:   s.deleteID,
		Submitting: s.submitting,
		Deleting:   s.deleting,
		Invalid:    append([]string(nil), s.invalid...),
	}
}
