package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/neto/errors"
	"github.com/kbukum/neto/logger"
	"github.com/kbukum/neto/observability"
)

// Get sends a GET request without a body.
func (c *Configuration) Get(ctx context.Context, path string, query []Param) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Delete sends a DELETE request without a body.
func (c *Configuration) Delete(ctx context.Context, path string, query []Param) (*http.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, query, nil)
}

// Put sends a PUT request with body.
func (c *Configuration) Put(ctx context.Context, path string, query []Param, body Body) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, path, query, body)
}

// Patch sends a PATCH request with body.
func (c *Configuration) Patch(ctx context.Context, path string, query []Param, body Body) (*http.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, query, body)
}

// Post sends a POST request with body.
func (c *Configuration) Post(ctx context.Context, path string, query []Param, body Body) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, path, query, body)
}

// Do joins path onto the base URL, attaches query in order, encodes body
// and makes exactly one call to the client. The response is returned as
// the client produced it; the caller must close its body.
//
// Encoding errors are returned before anything is sent. Client failures
// are wrapped in a TRANSPORT_ERROR that unwraps to the original error.
func (c *Configuration) Do(ctx context.Context, method, path string, query []Param, body Body) (*http.Response, error) {
	rb := NewRequestBuilder(method, c.URL(path)).AddQuery(query...)
	rb, err := Encode(rb, body, c.caps)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			c.metrics.RecordError(ctx, method, string(appErr.Code))
		}
		return nil, err
	}
	return c.send(ctx, rb, kindOf(body))
}

// Send issues a prepared request through the client.
func (c *Configuration) Send(ctx context.Context, rb *RequestBuilder) (*http.Response, error) {
	return c.send(ctx, rb, KindNone)
}

func (c *Configuration) send(ctx context.Context, rb *RequestBuilder, kind BodyKind) (*http.Response, error) {
	requestID := uuid.NewString()
	ctx, span := observability.StartClientSpan(ctx, rb.Method, rb.URL,
		attribute.String(observability.AttrRequestID, requestID),
		attribute.StringSlice(observability.AttrDefaultHeaders, c.headers.Redacted()),
		attribute.String(observability.AttrBodyKind, kind.String()),
	)

	ctx = logger.WithRequestID(ctx, requestID)
	if sc := span.SpanContext(); sc.HasTraceID() {
		ctx = logger.WithTraceID(ctx, sc.TraceID().String())
	}
	log := c.log.WithContext(ctx)

	fields := logger.Fields(
		logger.FieldMethod, rb.Method,
		logger.FieldURL, rb.URL,
		logger.FieldBodyKind, kind.String(),
	)

	req, err := rb.Build(ctx)
	if err != nil {
		return nil, c.fail(ctx, log, span, rb.Method, fields, errors.Transport(err))
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, c.fail(ctx, log, span, rb.Method, logger.MergeWithDuration(fields, elapsed), errors.Transport(err))
	}

	observability.EndClientSpan(span, resp, nil)
	c.metrics.RecordRequest(ctx, rb.Method, resp.StatusCode, elapsed)
	fields[logger.FieldStatusCode] = resp.StatusCode
	log.Debug("request completed", logger.MergeWithDuration(fields, elapsed))
	return resp, nil
}

func (c *Configuration) fail(ctx context.Context, log *logger.Logger, span trace.Span, method string, fields map[string]interface{}, err *errors.AppError) error {
	observability.EndClientSpan(span, nil, err)
	c.metrics.RecordError(ctx, method, string(err.Code))
	log.Debug("request failed", logger.MergeWithError(fields, err))
	return err
}
