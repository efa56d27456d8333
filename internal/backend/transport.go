package backend

import (
	"net/http"
	"time"

	"github.com/techexpo/console/internal/loader"
	"github.com/techexpo/console/internal/session"
)

// metricsTransport reports every round trip to an observer, typically
// the Prometheus upstream collectors. Status 0 means no response came
// back at all.
type metricsTransport struct {
	next    http.RoundTripper
	observe func(method string, status int, elapsed time.Duration)
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.observe(req.Method, status, time.Since(start))

	return resp, err
}

// loaderTransport drives the global loader around every outgoing
// request. Stop runs on every exit path, success or not, so the counter
// always returns to zero once in-flight work resolves.
type loaderTransport struct {
	next   http.RoundTripper
	loader *loader.Loader
}

func (t *loaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.loader.Start()
	defer t.loader.Stop()

	return t.next.RoundTrip(req)
}

// authTransport attaches the bearer credential when the session store
// holds one, and globally intercepts authentication failures: a 401
// (and 403 when Strict403 is on) clears the session store and fires the
// forced-navigation hook, regardless of which screen sent the request.
// The response itself passes through unchanged.
type authTransport struct {
	next      http.RoundTripper
	sessions  session.Store
	strict403 bool

	// onAuthFailure forces navigation to the login route.
	onAuthFailure func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.sessions.Token(); token != "" {
		// RoundTrippers must not mutate the caller's request
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized ||
		(t.strict403 && resp.StatusCode == http.StatusForbidden) {
		_ = t.sessions.Clear()
		if t.onAuthFailure != nil {
			t.onAuthFailure()
		}
	}

	return resp, nil
}
