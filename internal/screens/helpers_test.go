package screens

import (
	"sync"

	"github.com/techexpo/console/internal/notify"
	"github.com/techexpo/console/internal/session"
)

type recordingNotifier struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) {
	r.mu.Lock()
	r.notes = append(r.notes, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.notes...)
}

func (r *recordingNotifier) last() (notify.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return notify.Notification{}, false
	}
	return r.notes[len(r.notes)-1], true
}

// fakeSessionReader stands in for the session store where a screen only
// needs to know who is signed in.
type fakeSessionReader struct {
	user session.AuthUser
	ok   bool
}

func (f *fakeSessionReader) User() (session.AuthUser, bool) { return f.user, f.ok }

func adminReader() *fakeSessionReader {
	return &fakeSessionReader{user: session.AuthUser{ID: 1, Username: "admin", Role: session.RoleAdmin}, ok: true}
}

func userReader() *fakeSessionReader {
	return &fakeSessionReader{user: session.AuthUser{ID: 2, Username: "staff", Role: session.RoleUser}, ok: true}
}
