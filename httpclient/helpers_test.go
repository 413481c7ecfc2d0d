package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/kbukum/neto/logger"
)

func mustNew(t *testing.T, opts ...Option) *Configuration {
	t.Helper()
	cfg, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return cfg
}

// recordingDoer captures requests and answers with a fixed response.
type recordingDoer struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
	status   int
	err      error
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var body string
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		body = string(data)
	}
	d.requests = append(d.requests, req)
	d.bodies = append(d.bodies, body)
	if d.err != nil {
		return nil, d.err
	}
	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Request:    req,
	}, nil
}

// redirectTransport sends every request to target while keeping the
// original Host header.
type redirectTransport struct {
	base   http.RoundTripper
	target *url.URL
}

func (t redirectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Host = req.URL.Host
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	return t.base.RoundTrip(out)
}

func targetURL(t *testing.T, srv *httptest.Server) *url.URL {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	return u
}

// redirectClient returns a plain client that reaches srv for any host.
func redirectClient(t *testing.T, srv *httptest.Server) *http.Client {
	return &http.Client{Transport: redirectTransport{base: http.DefaultTransport, target: targetURL(t, srv)}}
}

// redirectConfigured points a client built by Configure at srv.
func redirectConfigured(t *testing.T, cfg *Configuration, srv *httptest.Server) {
	t.Helper()
	hc, ok := cfg.Client().(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", cfg.Client())
	}
	hc.Transport = redirectTransport{base: hc.Transport, target: targetURL(t, srv)}
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(&logger.Config{Level: "debug", Format: "json", Writer: buf}, "test")
}
