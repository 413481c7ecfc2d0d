package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Param is a single query parameter. A list of params keeps its order and
// may repeat names.
type Param struct {
	Name  string
	Value string
}

// RequestBuilder describes a request before it is handed to the transport.
type RequestBuilder struct {
	Method      string
	URL         string
	Query       []Param
	Header      http.Header
	Body        []byte
	ContentType string
}

// NewRequestBuilder starts a request for method and url.
func NewRequestBuilder(method, url string) *RequestBuilder {
	return &RequestBuilder{Method: method, URL: url, Header: make(http.Header)}
}

// AddQuery appends params in order and returns rb.
func (rb *RequestBuilder) AddQuery(params ...Param) *RequestBuilder {
	rb.Query = append(rb.Query, params...)
	return rb
}

// withBody returns a copy of rb carrying body and contentType.
func (rb *RequestBuilder) withBody(body []byte, contentType string) *RequestBuilder {
	out := *rb
	out.Query = append([]Param(nil), rb.Query...)
	out.Header = rb.Header.Clone()
	out.Body = body
	out.ContentType = contentType
	return &out
}

// RawQuery encodes Query in order, repeating duplicate names.
func (rb *RequestBuilder) RawQuery() string {
	if len(rb.Query) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range rb.Query {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Build creates the *http.Request. Query params are appended after any
// query already present in URL. Content-Type is set from ContentType unless
// Header already carries one.
func (rb *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	u, err := url.Parse(rb.URL)
	if err != nil {
		return nil, fmt.Errorf("parse request url: %w", err)
	}
	if q := rb.RawQuery(); q != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}

	var req *http.Request
	if rb.Body != nil {
		req, err = http.NewRequestWithContext(ctx, rb.Method, u.String(), bytes.NewReader(rb.Body))
	} else {
		req, err = http.NewRequestWithContext(ctx, rb.Method, u.String(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for name, values := range rb.Header {
		req.Header[name] = append([]string(nil), values...)
	}
	if rb.ContentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", rb.ContentType)
	}
	return req, nil
}
