package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techexpo/console/internal/backend"
	"github.com/techexpo/console/internal/domain/exhibition"
	"github.com/techexpo/console/internal/domain/product"
	"github.com/techexpo/console/internal/loader"
	"github.com/techexpo/console/internal/session"
)

type clientFixture struct {
	client    *backend.Client
	sessions  session.Store
	loader    *loader.Loader
	redirects int
}

func newFixture(t *testing.T, handler http.Handler, strict403 bool) *clientFixture {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := &clientFixture{
		sessions: session.NewMemoryStore(),
		loader:   loader.New(),
	}
	f.client = backend.NewClient(backend.Config{
		BaseURL:   srv.URL,
		Loader:    f.loader,
		Sessions:  f.sessions,
		Strict403: strict403,
		OnAuthFailure: func() {
			f.redirects++
		},
	})
	return f
}

func TestClientAttachesBearerWhenSessionHasToken(t *testing.T) {
	var gotAuth string
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]exhibition.Exhibition{})
	}), false)

	if _, err := f.client.Exhibitions(context.Background()); err != nil {
		t.Fatalf("Exhibitions: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous request carried Authorization %q", gotAuth)
	}

	if err := f.sessions.Save(session.Session{
		User:  session.AuthUser{Username: "admin", Role: session.RoleAdmin},
		Token: "abc123",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := f.client.Exhibitions(context.Background()); err != nil {
		t.Fatalf("Exhibitions: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer abc123")
	}
}

func TestClientLoaderPairsStartStop(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]exhibition.Exhibition{})
	}), false)

	var sawLoading bool
	f.loader.Subscribe(func(loading bool) {
		if loading {
			sawLoading = true
		}
	})

	if _, err := f.client.Exhibitions(context.Background()); err != nil {
		t.Fatalf("Exhibitions: %v", err)
	}

	if !sawLoading {
		t.Fatal("loader never switched on during the request")
	}
	if f.loader.Loading() {
		t.Fatal("loader still on after the request resolved")
	}
}

func TestClientLoaderStopsOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
			},
		},
		{
			name: "hangup",
			handler: func(w http.ResponseWriter, r *http.Request) {
				hj, ok := w.(http.Hijacker)
				if !ok {
					t.Fatal("recorder not hijackable")
				}
				conn, _, _ := hj.Hijack()
				_ = conn.Close()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.handler, false)

			_, err := f.client.Exhibitions(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if f.loader.Loading() {
				t.Fatal("loader left on after a failed request")
			}
		})
	}
}

func TestClientUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"Invalid or expired access token"}}`))
	}), false)

	if err := f.sessions.Save(session.Session{
		User:  session.AuthUser{Username: "admin", Role: session.RoleAdmin},
		Token: "stale",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	_, err := f.client.Exhibitions(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message != "Invalid or expired access token" {
		t.Fatalf("Message = %q, want the server-supplied message", apiErr.Message)
	}

	if f.sessions.IsAuthenticated() {
		t.Fatal("session still present after 401")
	}
	if f.redirects != 1 {
		t.Fatalf("redirects = %d, want 1", f.redirects)
	}
	if f.loader.Loading() {
		t.Fatal("loader left on after the 401")
	}
}

func TestClientForbiddenOnlyInterceptedWhenStrict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Admin role required"}`))
	})

	t.Run("lenient", func(t *testing.T) {
		f := newFixture(t, handler, false)
		_ = f.sessions.Save(session.Session{User: session.AuthUser{Username: "operator", Role: session.RoleUser}, Token: "tok"})

		if _, err := f.client.Exhibitions(context.Background()); err == nil {
			t.Fatal("expected an error")
		}
		if !f.sessions.IsAuthenticated() {
			t.Fatal("403 cleared the session in lenient mode")
		}
		if f.redirects != 0 {
			t.Fatalf("redirects = %d, want 0", f.redirects)
		}
	})

	t.Run("strict", func(t *testing.T) {
		f := newFixture(t, handler, true)
		_ = f.sessions.Save(session.Session{User: session.AuthUser{Username: "operator", Role: session.RoleUser}, Token: "tok"})

		if _, err := f.client.Exhibitions(context.Background()); err == nil {
			t.Fatal("expected an error")
		}
		if f.sessions.IsAuthenticated() {
			t.Fatal("403 kept the session in strict mode")
		}
		if f.redirects != 1 {
			t.Fatalf("redirects = %d, want 1", f.redirects)
		}
	})
}

func TestClientErrorMessageFallsBackToGeneric(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nginx</html>"))
	}), false)

	_, err := f.client.Exhibitions(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if want := "backend returned status 502"; apiErr.Error() != want {
		t.Fatalf("Error() = %q, want %q", apiErr.Error(), want)
	}
}

func TestClientProductMultipartShape(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}

		var p product.Payload
		if err := json.Unmarshal([]byte(r.FormValue("product")), &p); err != nil {
			t.Fatalf("product part: %v", err)
		}
		if p.Name != "Sensor X" {
			t.Fatalf("product.name = %q", p.Name)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "brochure.pdf" {
			t.Fatalf("filename = %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "pdf-bytes" {
			t.Fatalf("file contents = %q", data)
		}

		_ = json.NewEncoder(w).Encode(product.Product{ID: 9, Name: p.Name, Description: p.Description, Attachment: header.Filename})
	}), false)

	created, err := f.client.CreateProduct(context.Background(),
		product.Payload{Name: "Sensor X", Description: "Edge sensor"},
		&backend.Upload{Filename: "brochure.pdf", Reader: strings.NewReader("pdf-bytes")},
	)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.Attachment != "brochure.pdf" {
		t.Fatalf("Attachment = %q", created.Attachment)
	}
}

func TestClientAttachmentURLs(t *testing.T) {
	f := newFixture(t, http.NotFoundHandler(), false)

	preview := f.client.AttachmentPreviewURL("a b.pdf")
	if !strings.HasSuffix(preview, "/api/products/preview/a%20b.pdf") {
		t.Fatalf("preview URL = %q", preview)
	}
	download := f.client.AttachmentDownloadURL("a b.pdf")
	if !strings.HasSuffix(download, "/api/products/download/a%20b.pdf") {
		t.Fatalf("download URL = %q", download)
	}
}
