package httpclient

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/kbukum/neto/errors"
	"github.com/kbukum/neto/logger"
)

// Configure builds a new *http.Client that sends the default headers with
// every request and replaces the current client with it. The base URL and
// headers are left untouched. Each call fully replaces the previous client.
//
// Default headers are keyed by name: when a name repeats, the last value is
// sent. They are not sent on redirects that leave the original host and its
// subdomains.
//
// Invalid header bytes and unusable TLS settings fail with
// CLIENT_BUILD_FAILED.
func (c *Configuration) Configure() error {
	for _, h := range c.headers {
		if !httpguts.ValidHeaderFieldName(h.Name) {
			return errors.ClientBuildFailed(fmt.Errorf("invalid header name %q", h.Name))
		}
		if !httpguts.ValidHeaderFieldValue(h.Value) {
			return errors.ClientBuildFailed(fmt.Errorf("invalid value for header %q", h.Name))
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if err := c.tls.Apply(transport); err != nil {
		return errors.ClientBuildFailed(err)
	}

	defaults := c.headers.collapse()
	c.client = &http.Client{
		Transport: &defaultHeaderTransport{base: transport, headers: defaults.secrets()},
		Timeout:   c.timeout,
	}

	c.log.Debug("client configured", logger.Fields(
		"name", c.name,
		logger.FieldURL, c.baseURL,
		logger.FieldHeaders, defaults.Redacted(),
		"tls", c.tls.IsEnabled(),
	))
	return nil
}

// defaultHeaderTransport adds default headers the request does not already
// carry. Redirect hops to a foreign host get none of them.
type defaultHeaderTransport struct {
	base    http.RoundTripper
	headers []secretHeader
}

func (t *defaultHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 || !sameOrigin(req) {
		return t.base.RoundTrip(req)
	}

	out := req.Clone(req.Context())
	if out.Header == nil {
		out.Header = make(http.Header)
	}
	for _, h := range t.headers {
		if len(req.Header.Values(h.name)) > 0 {
			continue
		}
		out.Header.Add(h.name, h.value.Reveal())
	}
	return t.base.RoundTrip(out)
}

// sameOrigin reports whether req targets the host of the first request in its
// redirect chain, or a subdomain of it. Ports are ignored.
func sameOrigin(req *http.Request) bool {
	first := req
	for first.Response != nil && first.Response.Request != nil {
		first = first.Response.Request
	}
	if first == req {
		return true
	}
	dest := strings.ToLower(req.URL.Hostname())
	origin := strings.ToLower(first.URL.Hostname())
	return dest == origin || strings.HasSuffix(dest, "."+origin)
}

// CloseIdleConnections forwards to the base transport.
func (t *defaultHeaderTransport) CloseIdleConnections() {
	if ci, ok := t.base.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
}
