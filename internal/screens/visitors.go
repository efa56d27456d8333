package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/domain/product"
	"github.com/techexpo/console/internal/domain/visitor"
	"github.com/techexpo/console/internal/notify"
)

type VisitorAPI interface {
	Exhibitions(ctx context.Context) ([]exhibition.Exhibition, error)
	Products(ctx context.Context) ([]product.Product, error)
	CreateVisitor(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error)
	VisitorsByExhibition(ctx context.Context, exhibitionID int64) ([]visitor.Visitor, error)
}

type VisitorForm struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required"`
	CompanyName  string  `json:"companyName" binding:"required"`
	ExhibitionID int64   `json:"exhibitionId" binding:"required"`
	ProductIDs   []int64 `json:"productIds"`
}

// Visitors lists leads per exhibition and supports the admin "Add
// Visitor" flow. Visitor records are never updated through the console;
// opening an existing one is a read-only view.
type Visitors struct {
	mu       sync.Mutex
	api      VisitorAPI
	notifier notify.Notifier

	list        []visitor.Visitor
	exhibitions []exhibition.Exhibition
	products    []product.Product
	selectedID  *int64

	form       VisitorForm
	invalid    []string
	modalOpen  bool
	viewingID  *int64
	deleteID   *int64
	submitting bool
}

func NewVisitors(api VisitorAPI, notifier notify.Notifier) *Visitors {
	return &Visitors{api: api, notifier: notifier}
}

// FetchFilters loads the exhibition filter (active ones only) and the
// product options the add-modal offers.
func (s *Visitors) FetchFilters(ctx context.Context) {
	exhibitions, err := s.api.Exhibitions(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch exhibitions")))
	} else {
		active := exhibitions[:0]
		for _, e := range exhibitions {
			if e.Active {
				active = append(active, e)
			}
		}
		s.mu.Lock()
		s.exhibitions = active
		s.mu.Unlock()
	}

	products, err := s.api.Products(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch products")))
		return
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

// SelectExhibition switches the filter and refetches. Clearing the
// selection empties the list without a network call.
func (s *Visitors) SelectExhibition(ctx context.Context, exhibitionID int64) {
	if exhibitionID == 0 {
		s.mu.Lock()
		s.selectedID = nil
		s.list = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.selectedID = &exhibitionID
	s.mu.Unlock()

	s.fetchSelected(ctx)
}

func (s *Visitors) fetchSelected(ctx context.Context) {
	s.mu.Lock()
	selected := s.selectedID
	s.mu.Unlock()
	if selected == nil {
		return
	}

	items, err := s.api.VisitorsByExhibition(ctx, *selected)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch visitors")))
		return
	}

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
}

func (s *Visitors) List() []visitor.Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]visitor.Visitor(nil), s.list...)
}

func (s *Visitors) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewingID = nil
	s.form = VisitorForm{}
	s.invalid = nil
	s.modalOpen = true
}

// OpenView loads an existing visitor into the form for display only.
func (s *Visitors) OpenView(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.list {
		if v.ID != id {
			continue
		}
		form := VisitorForm{
			Name:        v.Name,
			Email:       v.Email,
			Phone:       v.Phone,
			CompanyName: v.CompanyName,
		}
		if v.Exhibition != nil {
			form.ExhibitionID = v.Exhibition.ID
		} else {
			form.ExhibitionID = v.ExhibitionID
		}
		for _, vp := range v.VisitorProducts {
			form.ProductIDs = append(form.ProductIDs, vp.Product.ID)
		}
		s.viewingID = &id
		s.form = form
		s.invalid = nil
		s.modalOpen = true
		return
	}
}

func (s *Visitors) SetForm(form VisitorForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Visitors) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.viewingID = nil
	s.invalid = nil
}

// Submit creates a visitor; there is no update path. A failed email on
// the backend side is a warning, not a failure.
func (s *Visitors) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return
	}
	if s.viewingID != nil {
		// read-only view, nothing to submit
		s.mu.Unlock()
		return
	}

	form := s.form
	if fields := invalidFields(form); fields != nil {
		s.invalid = fields
		s.mu.Unlock()
		s.notifier.Notify(notify.Warning("Please fill in all required fields"))
		return
	}
	s.invalid = nil
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	resp, err := s.api.CreateVisitor(ctx, visitor.Visitor{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		CompanyName:  form.CompanyName,
		ExhibitionID: form.ExhibitionID,
		ProductIDs:   form.ProductIDs,
	})
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to save visitor")))
		return
	}

	s.fetchSelected(ctx)

	s.mu.Lock()
	s.modalOpen = false
	s.mu.Unlock()

	s.notifier.Notify(notify.Success("Visitor registered"))
	if !resp.EmailSent && resp.EmailError != "" {
		s.notifier.Notify(notify.Warning("Confirmation email not sent: " + resp.EmailError))
	}
}

func (s *Visitors) RequestDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = &id
}

func (s *Visitors) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = nil
}

// ConfirmDelete removes the visitor from the local list only; no
// backend delete endpoint is called.
// TODO(product): decide whether visitor delete should persist; today
// the row reappears on the next refetch.
func (s *Visitors) ConfirmDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteID == nil {
		return
	}
	id := *s.deleteID

	kept := s.list[:0]
	for _, v := range s.list {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.list = kept
	s.deleteID = nil
}

type VisitorsState struct {
	Items       []visitor.Visitor       `json:"items"`
	Exhibitions []exhibition.Exhibition `json:"exhibitions"`
	Products    []product.Product       `json:"products"`
	SelectedID  *int64                  `json:"selectedExhibitionId,omitempty"`
	ModalOpen   bool                    `json:"modalOpen"`
	ViewingID   *int64                  `json:"viewingId,omitempty"`
	Form        VisitorForm             `json:"form"`
	DeleteID    *int64                  `json:"deleteId,omitempty"`
	Submitting  bool                    `json:"submitting"`
	Invalid     []string                `json:"invalidFields,omitempty"`
}

func (s *Visitors) State() VisitorsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VisitorsState{
		Items:       append([]visitor.Visitor(nil), s.list...),
		Exhibitions: append([]exhibition.Exhibition(nil), s.exhibitions...),
		Products:    append([]product.Product(nil), s.products...),
		SelectedID:  s.selectedID,
		ModalOpen:   s.modalOpen,
		ViewingID:   s.viewingID,
		Form:        s.form,
		DeleteID:    s.deleteID,
		Submitting:  s.submitting,
		Invalid:     append([]string(nil), s.invalid...),
	}
}
