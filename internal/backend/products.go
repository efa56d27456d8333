package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/techexpo/console/internal/domain/product"
)

func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := c.doJSON(ctx, http.MethodGet, c.path("/products"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicProducts is the unauthenticated catalog the registration form
// offers for product-interest selection.
func (c *Client) PublicProducts(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := c.doJSON(ctx, http.MethodGet, c.path("/products/public"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct uploads the product JSON and an optional attachment as
// one multipart request. attachment may be nil.
func (c *Client) CreateProduct(ctx context.Context, p product.Payload, attachment *Upload) (product.Product, error) {
	var out product.Product
	if err := c.doMultipart(ctx, http.MethodPost, c.path("/products"), "product", p, attachment, &out); err != nil {
		return product.Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, p product.Payload, attachment *Upload) (product.Product, error) {
	var out product.Product
	if err := c.doMultipart(ctx, http.MethodPut, c.path(fmt.Sprintf("/products/%d", id)), "product", p, attachment, &out); err != nil {
		return product.Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, c.path(fmt.Sprintf("/products/%d", id)), nil, nil)
}

// AttachmentPreviewURL and AttachmentDownloadURL point the browser at
// the backend's file endpoints; the console never streams the bytes.

func (c *Client) AttachmentPreviewURL(filename string) string {
	return c.baseURL + c.path("/products/preview/"+url.PathEscape(filename))
}

func (c *Client) AttachmentDownloadURL(filename string) string {
	return c.baseURL + c.path("/products/download/"+url.PathEscape(filename))
}
