package guard

import (
	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/session"
)

// Outcome of one navigation attempt. The guard starts in "checking"
// (nothing rendered), then lands on exactly one of these.
type Outcome string

const (
	OutcomeAllowed    Outcome = "allowed"
	OutcomeRedirected Outcome = "redirected"
)

type Decision struct {
	Outcome Outcome
	// RedirectTo is set when Outcome is redirected.
	RedirectTo string
}

// SessionReader is the slice of the session store the guard consults.
type SessionReader interface {
	User() (session.AuthUser, bool)
	IsAuthenticated() bool
}

// Guard decides whether a navigation may proceed. It holds no state
// between navigations; every call re-reads the session store.
type Guard struct {
	sessions SessionReader
}

func New(sessions SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

// Evaluate runs the per-navigation state machine. allowedRoles nil
// means any authenticated user; otherwise the user's role must be in
// the set or they are sent to their role's landing route.
func (g *Guard) Evaluate(allowedRoles []session.Role) Decision {
	if !g.sessions.IsAuthenticated() {
		return Decision{Outcome: OutcomeRedirected, RedirectTo: routes.Path(routes.Login)}
	}

	if allowedRoles == nil {
		return Decision{Outcome: OutcomeAllowed}
	}

	user, ok := g.sessions.User()
	if !ok {
		return Decision{Outcome: OutcomeRedirected, RedirectTo: routes.Landing(session.RoleUser)}
	}

	for _, r := range allowedRoles {
		if user.Role == r {
			return Decision{Outcome: OutcomeAllowed}
		}
	}
	return Decision{Outcome: OutcomeRedirected, RedirectTo: routes.Landing(user.Role)}
}

// EvaluateRoute looks the route up in the role table first. Public
// routes are always allowed; a key with no table entry fails closed
// and sends the visitor to login.
func (g *Guard) EvaluateRoute(key routes.Key) Decision {
	e, ok := routes.Lookup(key)
	if !ok {
		return Decision{Outcome: OutcomeRedirected, RedirectTo: routes.Path(routes.Login)}
	}
	if e.Public {
		return Decision{Outcome: OutcomeAllowed}
	}
	return g.Evaluate(e.Roles)
}
