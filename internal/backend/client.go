package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/techexpo/console/internal/loader"
	"github.com/techexpo/console/internal/session"
)

// Client calls the exhibition backend over HTTP. Every request runs
// through the interceptor chain: global loader start/stop, bearer
// attach from the session store, and the cross-cutting 401 handler.
type Client struct {
	baseURL    string
	basePath   string
	httpClient *http.Client
}

type Config struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8080".
	BaseURL string
	// BasePath is the deployment base path for resource endpoints.
	// Defaults to "/api"; auth endpoints always live at the root.
	BasePath string
	Loader   *loader.Loader
	Sessions session.Store
	// Strict403 also treats 403 as an authentication failure (the most
	// permissive interceptor variant).
	Strict403 bool
	// OnAuthFailure is invoked after the session is cleared on 401/403.
	OnAuthFailure func()
	// ObserveRoundTrip, when set, receives every backend round trip for
	// metrics collection.
	ObserveRoundTrip func(method string, status int, elapsed time.Duration)
	// Timeout guards the connection, not individual flows; screen
	// flows themselves carry no cancellation.
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/api"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var rt http.RoundTripper = http.DefaultTransport
	if cfg.ObserveRoundTrip != nil {
		rt = &metricsTransport{next: rt, observe: cfg.ObserveRoundTrip}
	}
	rt = &authTransport{
		next:          rt,
		sessions:      cfg.Sessions,
		strict403:     cfg.Strict403,
		onAuthFailure: cfg.OnAuthFailure,
	}
	rt = &loaderTransport{next: rt, loader: cfg.Loader}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		basePath:   "/" + strings.Trim(basePath, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: rt},
	}
}

// APIError is a non-2xx backend response. Message holds the
// server-supplied text when one could be extracted.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// path joins the deployment base path with a resource path.
func (c *Client) path(p string) string {
	return c.basePath + p
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// doMultipart sends a "product"-style JSON part plus an optional file
// part, the shape the backend's upload endpoints consume.
func (c *Client) doMultipart(ctx context.Context, method, path, partName string, payload any, file *Upload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := w.WriteField(partName, string(data)); err != nil {
		return err
	}

	if file != nil {
		part, err := w.CreateFormFile("file", file.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Upload is a file attachment travelling with a multipart request.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// parseAPIError extracts the server message on a best-effort basis.
// Both envelope shapes seen from the backend are tried; anything
// unparsable falls back to a bare status error.
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var nested struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		if nested.Error.Message != "" {
			apiErr.Code = nested.Error.Code
			apiErr.Message = nested.Error.Message
			return apiErr
		}
		if nested.Message != "" {
			apiErr.Message = nested.Message
			return apiErr
		}
	}

	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Error != "" {
		apiErr.Message = flat.Error
	}
	return apiErr
}
