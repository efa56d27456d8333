package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/domain/account"
	"github.com/techexpo/console/internal/notify"
)

type AccountAPI interface {
	Accounts(ctx context.Context) ([]account.Account, error)
	CreateAccount(ctx context.Context, p account.Payload) (account.Account, error)
	UpdateAccount(ctx context.Context, id int64, p account.Payload) (account.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// AccountForm backs the Users screen. Password is required on create
// and ignored on update.
type AccountForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
}

type Accounts struct {
	mu       sync.Mutex
	api      AccountAPI
	notifier notify.Notifier

	list       []account.Account
	form       AccountForm
	invalid    []string
	modalOpen  bool
	editingID  *int64
	deleteID   *int64
	submitting bool
	deleting   bool
}

func NewAccounts(api AccountAPI, notifier notify.Notifier) *Accounts {
	return &Accounts{api: api, notifier: notifier}
}

func (s *Accounts) FetchAll(ctx context.Context) {
	items, err := s.api.Accounts(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to fetch users")))
		return
	}

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
}

func (s *Accounts) List() []account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.Account(nil), s.list...)
}

func (s *Accounts) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = nil
	s.form = AccountForm{Role: "USER"}
	s.invalid = nil
	s.modalOpen = true
}

func (s *Accounts) OpenEdit(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.list {
		if a.ID != id {
			continue
		}
		s.editingID = &id
		s.form = AccountForm{Username: a.Username, Role: string(a.Role)}
		s.invalid = nil
		s.modalOpen = true
		return
	}
}

func (s *Accounts) SetForm(form AccountForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Accounts) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.editingID = nil
	s.invalid = nil
}

func (s *Accounts) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return
	}

	form := s.form
	editingID := s.editingID

	fields := invalidFields(form)
	// password only matters on create
	if editingID == nil && form.Password == "" {
		fields = append(fields, "password")
	}
	if fields != nil {
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

	payload := account.Payload{Username: form.Username, Password: form.Password, Role: form.Role}

	var err error
	if editingID != nil {
		_, err = s.api.UpdateAccount(ctx, *editingID, payload)
	} else {
		_, err = s.api.CreateAccount(ctx, payload)
	}
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to save user")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.modalOpen = false
	s.editingID = nil
	s.mu.Unlock()

	if editingID != nil {
		s.notifier.Notify(notify.Success("User updated"))
	} else {
		s.notifier.Notify(notify.Success("User created"))
	}
}

func (s *Accounts) RequestDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = &id
}

func (s *Accounts) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = nil
}

func (s *Accounts) ConfirmDelete(ctx context.Context) {
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

	if err := s.api.DeleteAccount(ctx, id); err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to delete user")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.deleteID = nil
	s.mu.Unlock()

	s.notifier.Notify(notify.Success("User deleted"))
}

type AccountsState struct {
	Items      []account.Account `json:"items"`
	ModalOpen  bool              `json:"modalOpen"`
	EditingID  *int64            `json:"editingId,omitempty"`
	DeleteID   *int64            `json:"deleteId,omitempty"`
	Submitting bool              `json:"submitting"`
	Deleting   bool              `json:"deleting"`
	Invalid    []string          `json:"invalidFields,omitempty"`
}

func (s *Accounts) State() AccountsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AccountsState{
		Items:      append([]account.Account(nil), s.list...),
		ModalOpen:  s.modalOpen,
		EditingID:  s.editingID,
		DeleteID:   s.deleteID,
		Submitting: s.submitting,
		Deleting:   s.deleting,
		Invalid:    append([]string(nil), s.invalid...),
	}
}
