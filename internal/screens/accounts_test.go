package screens

import (
	"context"
	"testing"

	"github.com/techexpo/console/internal/domain/account"
	"github.com/techexpo/console/internal/session"
)

type fakeAccountAPI struct {
	list     []account.Account
	createFn func(ctx context.Context, p account.Payload) (account.Account, error)
	updateFn func(ctx context.Context, id int64, p account.Payload) (account.Account, error)

	creates int
	updates int
	deletes int
}

func (f *fakeAccountAPI) Accounts(ctx context.Context) ([]account.Account, error) {
	return f.list, nil
}

func (f *fakeAccountAPI) CreateAccount(ctx context.Context, p account.Payload) (account.Account, error) {
	f.creates++
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return account.Account{ID: 1, Username: p.Username}, nil
}

func (f *fakeAccountAPI) UpdateAccount(ctx context.Context, id int64, p account.Payload) (account.Account, error) {
	f.updates++
	if f.updateFn != nil {
		return f.updateFn(ctx, id, p)
	}
	return account.Account{ID: id, Username: p.Username}, nil
}

func (f *fakeAccountAPI) DeleteAccount(ctx context.Context, id int64) error {
	f.deletes++
	return nil
}

func TestAccountsCreateRequiresPassword(t *testing.T) {
	api := &fakeAccountAPI{}
	s := NewAccounts(api, &recordingNotifier{})

	s.OpenCreate()
	s.SetForm(AccountForm{Username: "staff", Role: "USER"})
	s.Submit(context.Background())

	if api.creates != 0 {
		t.Fatalf("creates = %d, want 0", api.creates)
	}

	found := false
	for _, f := range s.State().Invalid {
		if f == "password" {
			found = true
		}
	}
	if !found {
		t.Fatalf("invalid = %v, want password flagged on create", s.State().Invalid)
	}
}

func TestAccountsUpdateAllowsEmptyPassword(t *testing.T) {
	api := &fakeAccountAPI{
		list: []account.Account{{ID: 9, Username: "staff", Role: session.RoleUser}},
	}
	var sent account.Payload
	api.updateFn = func(ctx context.Context, id int64, p account.Payload) (account.Account, error) {
		sent = p
		return account.Account{ID: id, Username: p.Username}, nil
	}

	s := NewAccounts(api, &recordingNotifier{})
	s.FetchAll(context.Background())
	s.OpenEdit(9)
	s.SetForm(AccountForm{Username: "staff2", Role: "ADMIN"})
	s.Submit(context.Background())

	if api.updates != 1 || api.creates != 0 {
		t.Fatalf("updates=%d creates=%d, want 1/0", api.updates, api.creates)
	}
	if sent.Password != "" {
		t.Fatalf("password = %q, want empty on update", sent.Password)
	}
	if sent.Role != "ADMIN" {
		t.Fatalf("role = %q, want ADMIN", sent.Role)
	}
}

func TestAccountsRoleMustBeKnown(t *testing.T) {
	api := &fakeAccountAPI{}
	s := NewAccounts(api, &recordingNotifier{})

	s.OpenCreate()
	s.SetForm(AccountForm{Username: "staff", Password: "hunter22", Role: "SUPERUSER"})
	s.Submit(context.Background())

	if api.creates != 0 {
		t.Fatalf("creates = %d, want 0 for an unknown role", api.creates)
	}
}
