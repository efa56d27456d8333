package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/backend"
	"github.com/techexpo/console/internal/notify"
	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/session"
)

type LoginAPI interface {
	Login(ctx context.Context, req backend.LoginRequest) (backend.LoginResponse, error)
}

type LoginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login drives the login form: validate, authenticate, persist the
// session, and hand back the role-appropriate landing route.
type Login struct {
	mu       sync.Mutex
	api      LoginAPI
	sessions session.Store
	notifier notify.Notifier

	submitting bool
}

func NewLogin(api LoginAPI, sessions session.Store, notifier notify.Notifier) *Login {
	return &Login{api: api, sessions: sessions, notifier: notifier}
}

// Submit returns the landing path and ok=true on success. Empty
// credentials never reach the network.
func (s *Login) Submit(ctx context.Context, form LoginForm) (string, bool) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return "", false
	}
	if invalidFields(form) != nil {
		s.mu.Unlock()
		s.notifier.Notify(notify.Warning("Username and password are required"))
		return "", false
	}
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	resp, err := s.api.Login(ctx, backend.LoginRequest{Username: form.Username, Password: form.Password})
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Invalid username or password")))
		return "", false
	}

	err = s.sessions.Save(session.Session{
		User: session.AuthUser{
			ID:       resp.ID,
			Email:    resp.Email,
			Username: resp.Username,
			Role:     resp.Role,
		},
		Token: resp.Token,
	})
	if err != nil {
		s.notifier.Notify(notify.Destructive("Could not persist the session"))
		return "", false
	}

	s.notifier.Notify(notify.Success("Login successful"))
	return routes.Landing(resp.Role), true
}

// Logout clears the session; the caller navigates to the login route.
func (s *Login) Logout() {
	_ = s.sessions.Clear()
}
