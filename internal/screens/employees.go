package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/domain/employee"
	"github.com/techexpo/console/internal/notify"
)

type EmployeeAPI interface {
	Employees(ctx context.Context) ([]employee.Employee, error)
	CreateEmployee(ctx context.Context, p employee.Payload) (employee.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, p employee.Payload) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type EmployeeForm struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Department string  `json:"department" binding:"required"`
	Salary     float64 `json:"salary" binding:"required,gt=0"`
}

type Employees struct {
	mu       sync.Mutex
	api      EmployeeAPI
	notifier notify.Notifier

	list       []employee.Employee
	form       EmployeeForm
	invalid    []string
	modalOpen  bool
	editingID  *int64
	deleteID   *int64
	submitting bool
	deleting   bool
}

func NewEmployees(api EmployeeAPI, notifier notify.Notifier) *Employees {
	return &Employees{api: api, notifier: notifier}
}

func (s *Employees) FetchAll(ctx context.Context) {
	items, err := s.api.Employees(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to load employees")))
		return
	}

	s.mu.Lock()
	s.list = items
	s.mu.Unlock()
}

func (s *Employees) List() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]employee.Employee(nil), s.list...)
}

func (s *Employees) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = nil
	s.form = EmployeeForm{}
	s.invalid = nil
	s.modalOpen = true
}

func (s *Employees) OpenEdit(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.list {
		if e.ID != id {
			continue
		}
		s.editingID = &id
		s.form = EmployeeForm{Name: e.Name, Email: e.Email, Department: e.Department, Salary: e.Salary}
		s.invalid = nil
		s.modalOpen = true
		return
	}
}

func (s *Employees) SetForm(form EmployeeForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

func (s *Employees) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.editingID = nil
	s.invalid = nil
}

func (s *Employees) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return
	}

	form := s.form
	if fields := invalidFields(form); fields != nil {
		s.invalid = fields
		s.mu.Unlock()
		s.notifier.Notify(notify.Warning("All fields are required"))
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

	payload := employee.Payload{Name: form.Name, Email: form.Email, Department: form.Department, Salary: form.Salary}

	var err error
	if editingID != nil {
		_, err = s.api.UpdateEmployee(ctx, *editingID, payload)
	} else {
		_, err = s.api.CreateEmployee(ctx, payload)
	}
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to save employee")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.modalOpen = false
	s.editingID = nil
	s.mu.Unlock()

	if editingID != nil {
		s.notifier.Notify(notify.Success("Employee updated successfully"))
	} else {
		s.notifier.Notify(notify.Success("Employee added successfully"))
	}
}

func (s *Employees) RequestDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = &id
}

func (s *Employees) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteID = nil
}

func (s *Employees) ConfirmDelete(ctx context.Context) {
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

	if err := s.api.DeleteEmployee(ctx, id); err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to delete employee")))
		return
	}

	s.FetchAll(ctx)

	s.mu.Lock()
	s.deleteID = nil
	s.mu.Unlock()

	s.notifier.Notify(notify.Success("Employee deleted"))
}

type EmployeesState struct {
	Items      []employee.Employee `json:"items"`
	ModalOpen  bool                `json:"modalOpen"`
	EditingID  *int64              `json:"editingId,omitempty"`
	DeleteID   *int64              `json:"deleteId,omitempty"`
	Submitting bool                `json:"submitting"`
	Deleting   bool                `json:"deleting"`
	Invalid    []string            `json:"invalidFields,omitempty"`
}

func (s *Employees) State() EmployeesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EmployeesState{
		Items:      append([]employee.Employee(nil), s.list...),
		ModalOpen:  s.modalOpen,
		EditingID:  s.editingID,
		DeleteID:   s.deleteID,
		Submitting: s.submitting,
		Deleting:   s.deleting,
		Invalid:    append([]string(nil), s.invalid...),
	}
}
