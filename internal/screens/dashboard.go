package screens

import (
	"context"
	"sync"

	"github.com/techexpo/console/internal/domain/dashboard"
	"github.com/techexpo/console/internal/notify"
)

type DashboardAPI interface {
	Dashboard(ctx context.Context) (dashboard.Summary, error)
}

// Dashboard is read-only; the backend computes everything.
type Dashboard struct {
	mu       sync.Mutex
	api      DashboardAPI
	notifier notify.Notifier

	summary dashboard.Summary
	loaded  bool
}

func NewDashboard(api DashboardAPI, notifier notify.Notifier) *Dashboard {
	return &Dashboard{api: api, notifier: notifier}
}

func (s *Dashboard) Fetch(ctx context.Context) {
	summary, err := s.api.Dashboard(ctx)
	if err != nil {
		s.notifier.Notify(notify.Destructive(serverMessage(err, "Failed to load dashboard")))
		return
	}

	s.mu.Lock()
	s.summary = summary
	s.loaded = true
	s.mu.Unlock()
}

func (s *Dashboard) Summary() (dashboard.Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, s.loaded
}
