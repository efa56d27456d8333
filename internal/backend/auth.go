package backend

import (
	"context"
	"net/http"

	"github.com/techexpo/console/internal/session"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors the backend's login body; only username and
// role are guaranteed, the rest varies by deployment.
type LoginResponse struct {
	Token    string       `json:"token,omitempty"`
	ID       int64        `json:"id,omitempty"`
	Email    string       `json:"email,omitempty"`
	Username string       `json:"username"`
	Role     session.Role `json:"role"`
}

// Login authenticates against the backend. Auth lives at the root,
// outside the deployment base path.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}
