package backend

import (
	"context"
	"net/http"

	"github.com/techexpo/console/internal/domain/dashboard"
)

// Dashboard fetches the server-computed aggregate; the console does no
// counting of its own.
func (c *Client) Dashboard(ctx context.Context) (dashboard.Summary, error) {
	var out dashboard.Summary
	if err := c.doJSON(ctx, http.MethodGet, c.path("/dashboard"), nil, &out); err != nil {
		return dashboard.Summary{}, err
	}
	return out, nil
}
