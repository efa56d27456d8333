package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/techexpo/console/internal/domain/account"
)

// Console accounts live under /users at the backend root, outside the
// deployment base path, matching where this backend mounts them.

func (c *Client) Accounts(ctx context.Context) ([]account.Account, error) {
	var out []account.Account
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAccount(ctx context.Context, p account.Payload) (account.Account, error) {
	var out account.Account
	if err := c.doJSON(ctx, http.MethodPost, "/users", p, &out); err != nil {
		return account.Account{}, err
	}
	return out, nil
}

// UpdateAccount never carries a password; password changes are not a
// console feature.
func (c *Client) UpdateAccount(ctx context.Context, id int64, p account.Payload) (account.Account, error) {
	p.Password = ""
	var out account.Account
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), p, &out); err != nil {
		return account.Account{}, err
	}
	return out, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
