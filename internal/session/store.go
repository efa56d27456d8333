package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the single source of truth for who is logged in. Purely
// local; no implementation makes network calls on the read path beyond
// its own storage medium. Implementations must be safe to use where no
// persistent medium exists (the memory store serves that case).
type Store interface {
	// Save persists the session, overwriting any prior value.
	Save(s Session) error
	// User returns the stored identity, or ok=false when absent or the
	// medium is unavailable.
	User() (AuthUser, bool)
	// Token returns the stored bearer token, or "" when absent.
	Token() string
	// Clear removes the stored session. Clearing an empty store is a no-op.
	Clear() error
	// IsAuthenticated reports whether a usable session is stored.
	IsAuthenticated() bool
}

// tokenUsable rejects tokens that carry a parseable, already-expired exp
// claim. The console never holds the signing secret, so the signature is
// not checked here; the backend remains the authority and still answers
// 401 for anything it dislikes.
func tokenUsable(raw string) bool {
	if raw == "" {
		return true // cookie-scheme deployments store no token at all
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return true // opaque token, nothing to inspect
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return exp.After(time.Now())
}

// MemoryStore holds the session in process memory. It backs tests and
// runs where no storage medium is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	sess *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = &s
	return nil
}

func (m *MemoryStore) User() (AuthUser, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.sess == nil || !tokenUsable(m.sess.Token) {
		return AuthUser{}, false
	}
	return m.sess.User, true
}

func (m *MemoryStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.sess == nil {
		return ""
	}
	return m.sess.Token
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}

func (m *MemoryStore) IsAuthenticated() bool {
	_, ok := m.User()
	return ok
}
