package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/notify"
	"github.com/techexpo/console/internal/session"
)

type ExhibitionAPI interface {
	Exhibitions(ctx context.Context) ([]exhibition.Exhibition, error)
	CreateExhibition(ctx context.Context, p exhibition.Payload) (exhibition.Exhibition, error)
	UpdateExhibition(ctx context.Context, id int64, p exhibition.Payload) (exhibition.Exhibition, error)
	DeleteExhibition(ctx context.Context, id int64) error
}

// ExhibitionForm is the modal's working copy. Timing is entered as two
// times and joined on submit.
type ExhibitionForm struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// Exhibitions is shared between roles: USER sees the list, only ADMIN
// may open the modal or delete.
type Exhibitions struct {
	mu       sync.Mutex
	api      ExhibitionAPI
	sessions interface {
		User() (session.AuthUser, bool)
	}
	notifier notify.Notifier

	list       []exhibition.Exhibition
	form       ExhibitionForm
	invalid    []string
	modalOpen  bool
	editingID  *int64
	deleteID   *int64
	submitting bool
	deleting   bool
}

func NewExhibitions(api ExhibitionAPI, sessions interface {
	User() (session.AuthUser, bool)
}, notifier notify.Notifier) *Exhibitions {
	return &Exhibitions{api: api, sessions: sessions, notifier: notifier}
}

func (s *Exhibitions) isAdmin() bool {
	u, ok := s.sessions.User()
	return ok && u.Role == session.RoleAdmin
}

// FetchAll loads the list. On failure the previous list stays in place
// and the failure becomes a notification, not a crash.
func (s *Exhibitions) FetchAll(ctx context.Context) {
	items, err := s.api.Exhibitions(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch exhibitions")))
		return
	}

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
}

func (s *Exhibitions) List() []exhibition.Exhibition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]exhibition.Exhibition(nil), s.list...)
}

// OpenCreate resets the form into create mode. Admin only.
func (s *Exhibitions) OpenCreate() {
	if !s.isAdmin() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = nil
	s.form = ExhibitionForm{Active: true}
	s.invalid = nil
	s.modalOpen = true
}

// OpenEdit loads an already-fetched exhibition into the form. Admin only.
func (s *Exhibitions) OpenEdit(id int64) {
	if !s.isAdmin() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.list {
		if e.ID != id {
			continue
		}
		startTime, endTime, _ := strings.Cut(e.Timing, " - ")
		s.editingID = &id
		s.form = ExhibitionForm{
			Name:      e.Name,
			Location:  e.Location,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			StartTime: startTime,
			EndTime:   endTime,
			Active:    e.Active,
		}
		s.invalid = nil
		s.modalOpen = true
		return
	}
}

func (s *Exhibitions) SetForm(form ExhibitionForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Exhibitions) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.editingID = nil
	s.invalid = nil
}

// Submit validates, then creates or updates depending on edit mode.
// A submit while one is in flight is a no-op. The refetch is sequenced
// after the mutation's response; the modal only closes on success.
func (s *Exhibitions) Submit(ctx context.Context) {
	if !s.isAdmin() {
		return
	}

	s.mu.Lock()
	if s.submitting {
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
	editingID := s.editingID
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	payload := exhibition.Payload{
		Name:      form.Name,
		Location:  form.Location,
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		Timing:    form.StartTime + " - " + form.EndTime,
		Active:    form.Active,
	}

	var err error
	if editingID != nil {
		_, err = s.api.UpdateExhibition(ctx, *editingID, payload)
	} else {
		_, err = s.api.CreateExhibition(ctx, payload)
	}
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to save exhibition")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.modalOpen = false
	s.editingID = nil
	s.mu.Unlock()

	if editingID != nil {
		s.notifier.Notify(notify.Success("Exhibition updated"))
	} else {
		s.notifier.Notify(notify.Success("Exhibition created"))
	}
}

// RequestDelete arms the confirmation dialog.
func (s *Exhibitions) RequestDelete(id int64) {
	if !s.isAdmin() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = &id
}

func (s *Exhibitions) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = nil
}

// ConfirmDelete deletes the armed candidate and filters it out of the
// local list on success.
func (s *Exhibitions) ConfirmDelete(ctx context.Context) {
	if !s.isAdmin() {
		return
	}

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

	if err := s.api.DeleteExhibition(ctx, id); err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to delete exhibition")))
		return
	}

	s.mu.Lock()
	kept := s.list[:0]
	for _, e := range s.list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.list = kept
	s.deleteID = nil
	s.mu.Unlock()

	s.notifier.Notify(notify.Success("Exhibition deleted"))
}

// State is a snapshot for rendering.
type ExhibitionsState struct {
	Items      []exhibition.Exhibition `json:"items"`
	ModalOpen  bool                    `json:"modalOpen"`
	EditingID  *int64                  `json:"editingId,omitempty"`
	DeleteID   *int64                  `json:"deleteId,omitempty"`
	Submitting bool                    `json:"submitting"`
	Deleting   bool                    `json:"deleting"`
	Invalid    []string                `json:"invalidFields,omitempty"`
	CanMutate  bool                    `json:"canMutate"`
}

func (s *Exhibitions) State() ExhibitionsState {
	admin := s.isAdmin()

	s.mu.Lock()
	defer s.mu.Unlock()
	return ExhibitionsState{
		Items:      append([]exhibition.Exhibition(nil), s.list...),
		ModalOpen:  s.modalOpen,
		EditingID:  s.editingID,
		DeleteID:   s.deleteID,
		Submitting: s.submitting,
		Deleting:   s.deleting,
		Invalid:    append([]string(nil), s.invalid...),
		CanMutate:  admin,
	}
}
