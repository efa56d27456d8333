package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/techexpo/console/internal/domain/visitor"
)

// CreateVisitor registers a lead. The backend sends the confirmation
// email; the response says whether that worked.
func (c *Client) CreateVisitor(ctx context.Context, v visitor.Visitor) (visitor.CreateResponse, error) {
	var out visitor.CreateResponse
	if err := c.doJSON(ctx, http.MethodPost, c.path("/visitors"), v, &out); err != nil {
		return visitor.CreateResponse{}, err
	}
	return out, nil
}

func (c *Client) AllVisitors(ctx context.Context) ([]visitor.Visitor, error) {
	var out []visitor.Visitor
	if err := c.doJSON(ctx, http.MethodGet, c.path("/visitors/all"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VisitorsByExhibition(ctx context.Context, exhibitionID int64) ([]visitor.Visitor, error) {
	var out []visitor.Visitor
	if err := c.doJSON(ctx, http.MethodGet, c.path(fmt.Sprintf("/visitors/exhibition/%d", exhibitionID)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
