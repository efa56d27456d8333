package session

// Role values mirror what the backend issues at login.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// AuthUser is the identity held by the session store. The store keeps at
// most one; a new login replaces it, logout or a 401 removes it.
type AuthUser struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session pairs the identity with the bearer token proving it.
type Session struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token,omitempty"`
}
