package routes

import (
	"fmt"

	"github.com/techexpo/console/internal/session"
)

// Key identifies a console route in the role table. Keys are stable
// identifiers, not URL paths; Path maps them to the served paths.
type Key string

const (
	Login       Key = "login"
	Dashboard   Key = "dashboard"
	Exhibitions Key = "exhibitions"
	Visitors    Key = "visitors"
	Products    Key = "products"
	Users       Key = "users"
	Employees   Key = "employees"
	// Visit is the public self-registration route. Its path shape is
	// embedded in generated QR codes and must never change.
	Visit Key = "visit"
)

// Entry is one row of the role table: either Public, or the set of
// roles allowed through.
type Entry struct {
	Public bool
	Roles  []session.Role
}

func roles(rs ...session.Role) Entry { return Entry{Roles: rs} }

// Table is the single authority on who may reach which route.
var Table = map[Key]Entry{
	Login:       {Public: true},
	Visit:       {Public: true},
	Dashboard:   roles(session.RoleAdmin),
	Exhibitions: roles(session.RoleAdmin, session.RoleUser),
	Visitors:    roles(session.RoleAdmin, session.RoleUser),
	Products:    roles(session.RoleAdmin),
	Users:       roles(session.RoleAdmin),
	Employees:   roles(session.RoleAdmin),
}

var paths = map[Key]string{
	Login:       "/login",
	Dashboard:   "/dashboard",
	Exhibitions: "/exhibitions",
	Visitors:    "/visitors",
	Products:    "/products",
	Users:       "/users",
	Employees:   "/employees",
	Visit:       "/visit/:exhibitionId",
}

func Path(k Key) string { return paths[k] }

// Lookup returns the role table entry for k.
func Lookup(k Key) (Entry, bool) {
	e, ok := Table[k]
	return e, ok
}

// Allowed returns the permitted role set for k, or ok=false when k is
// public or unknown.
func Allowed(k Key) ([]session.Role, bool) {
	e, ok := Table[k]
	if !ok || e.Public {
		return nil, false
	}
	return e.Roles, true
}

// Landing is where a role ends up after login or a denied navigation.
func Landing(role session.Role) string {
	if role == session.RoleAdmin {
		return Path(Dashboard)
	}
	return Path(Exhibitions)
}

// Validate checks the table at startup: every key must have a path,
// every path a table entry, and non-public entries must carry at least
// one valid role.
func Validate() error {
	for k, e := range Table {
		if _, ok := paths[k]; !ok {
			return fmt.Errorf("route %q has no path", k)
		}
		if e.Public {
			continue
		}
		if len(e.Roles) == 0 {
			return fmt.Errorf("route %q is neither public nor role-restricted", k)
		}
		for _, r := range e.Roles {
			if !r.Valid() {
				return fmt.Errorf("route %q allows unknown role %q", k, r)
			}
		}
	}
	for k := range paths {
		if _, ok := Table[k]; !ok {
			return fmt.Errorf("path registered for %q but no role table entry", k)
		}
	}
	return nil
}
