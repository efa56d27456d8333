package routes_test

import (
	"testing"

	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/session"
)

func TestTableValidates(t *testing.T) {
	if err := routes.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLanding(t *testing.T) {
	if got := routes.Landing(session.RoleAdmin); got != "/dashboard" {
		t.Fatalf("Landing(ADMIN) = %q, want /dashboard", got)
	}
	if got := routes.Landing(session.RoleUser); got != "/exhibitions" {
		t.Fatalf("Landing(USER) = %q, want /exhibitions", got)
	}
}

func TestVisitPathStable(t *testing.T) {
	// embedded in printed QR codes; a change here breaks them
	if got := routes.Path(routes.Visit); got != "/visit/:exhibitionId" {
		t.Fatalf("Path(Visit) = %q, want /visit/:exhibitionId", got)
	}
}

func TestAdminOnlyRoutes(t *testing.T) {
	for _, k := range []routes.Key{routes.Dashboard, routes.Products, routes.Users, routes.Employees} {
		allowed, ok := routes.Allowed(k)
		if !ok {
			t.Fatalf("Allowed(%q) reported public", k)
		}
		if len(allowed) != 1 || allowed[0] != session.RoleAdmin {
			t.Fatalf("Allowed(%q) = %v, want ADMIN only", k, allowed)
		}
	}
}
