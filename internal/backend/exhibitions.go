package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/techexpo/console/internal/domain/exhibition"
)

func (c *Client) Exhibitions(ctx context.Context) ([]exhibition.Exhibition, error) {
	var out []exhibition.Exhibition
	if err := c.doJSON(ctx, http.MethodGet, c.path("/exhibitions"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExhibition(ctx context.Context, p exhibition.Payload) (exhibition.Exhibition, error) {
	var out exhibition.Exhibition
	if err := c.doJSON(ctx, http.MethodPost, c.path("/exhibitions"), p, &out); err != nil {
		return exhibition.Exhibition{}, err
	}
	return out, nil
}

func (c *Client) UpdateExhibition(ctx context.Context, id int64, p exhibition.Payload) (exhibition.Exhibition, error) {
	var out exhibition.Exhibition
	if err := c.doJSON(ctx, http.MethodPut, c.path(fmt.Sprintf("/exhibitions/%d", id)), p, &out); err != nil {
		return exhibition.Exhibition{}, err
	}
	return out, nil
}

func (c *Client) DeleteExhibition(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, c.path(fmt.Sprintf("/exhibitions/%d", id)), nil, nil)
}

// PublicExhibition serves the unauthenticated registration form.
func (c *Client) PublicExhibition(ctx context.Context, id int64) (exhibition.Exhibition, error) {
	var out exhibition.Exhibition
	if err := c.doJSON(ctx, http.MethodGet, c.path(fmt.Sprintf("/exhibitions/public/%d", id)), nil, &out); err != nil {
		return exhibition.Exhibition{}, err
	}
	return out, nil
}
