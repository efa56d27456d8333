package notify

import "sync"

// Hub retains the most recent notifications so the console surface can
// drain them, and forwards each one to an optional inner notifier.
type Hub struct {
	mu      sync.Mutex
	inner   Notifier
	pending []Notification
	limit   int
}

func NewHub(inner Notifier, limit int) *Hub {
	if limit <= 0 {
		limit = 50
	}
	return &Hub{inner: inner, limit: limit}
}

func (h *Hub) Notify(n Notification) {
	h.mu.Lock()
	h.pending = append(h.pending, n)
	if len(h.pending) > h.limit {
		h.pending = h.pending[len(h.pending)-h.limit:]
	}
	h.mu.Unlock()

	if h.inner != nil {
		h.inner.Notify(n)
	}
}

// Drain returns the pending notifications and clears them. Toasts are
// shown once; a second drain returns nothing.
func (h *Hub) Drain() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.pending
	h.pending = nil
	return out
}
