package account

import "github.com/techexpo/console/internal/session"

// Account is a console login managed on the Users screen.
type Account struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Role     session.Role `json:"role"`
}

// Payload creates or updates an account. Password is only sent on create;
// updates never carry it.
type Payload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
}
