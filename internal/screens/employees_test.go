package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/techexpo/console/internal/domain/dashboard"
	"github.com/techexpo/console/internal/domain/employee"
)

type fakeEmployeeAPI struct {
	list []employee.Employee

	creates int
	updates int
}

func (f *fakeEmployeeAPI) Employees(ctx context.Context) ([]employee.Employee, error) {
	return f.list, nil
}

func (f *fakeEmployeeAPI) CreateEmployee(ctx context.Context, p employee.Payload) (employee.Employee, error) {
	f.creates++
	return employee.Employee{ID: 1, Name: p.Name}, nil
}

func (f *fakeEmployeeAPI) UpdateEmployee(ctx context.Context, id int64, p employee.Payload) (employee.Employee, error) {
	f.updates++
	return employee.Employee{ID: id, Name: p.Name}, nil
}

func (f *fakeEmployeeAPI) DeleteEmployee(ctx context.Context, id int64) error {
	return nil
}

func TestEmployeesSalaryMustBePositive(t *testing.T) {
	cases := []struct {
		name   string
		salary float64
		wantOK bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"positive", 55000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeEmployeeAPI{}
			s := NewEmployees(api, &recordingNotifier{})

			s.OpenCreate()
			s.SetForm(EmployeeForm{
				Name:       "Ravi Kumar",
				Email:      "ravi@techexpo.local",
				Department: "Sales",
				Salary:     tc.salary,
			})
			s.Submit(context.Background())

			if tc.wantOK && api.creates != 1 {
				t.Fatalf("creates = %d, want 1", api.creates)
			}
			if !tc.wantOK && api.creates != 0 {
				t.Fatalf("creates = %d, want 0", api.creates)
			}
		})
	}
}

type fakeDashboardAPI struct {
	summary dashboard.Summary
	err     error
}

func (f *fakeDashboardAPI) Dashboard(ctx context.Context) (dashboard.Summary, error) {
	return f.summary, f.err
}

func TestDashboardFetchFailureKeepsPreviousSummary(t *testing.T) {
	api := &fakeDashboardAPI{summary: dashboard.Summary{TotalVisitors: 12}}
	s := NewDashboard(api, &recordingNotifier{})

	s.Fetch(context.Background())
	if got, loaded := s.Summary(); !loaded || got.TotalVisitors != 12 {
		t.Fatalf("summary = %+v loaded=%v", got, loaded)
	}

	api.err = errors.New("backend down")
	s.Fetch(context.Background())
	if got, loaded := s.Summary(); !loaded || got.TotalVisitors != 12 {
		t.Fatal("a failed refresh must keep the previous summary")
	}
}
