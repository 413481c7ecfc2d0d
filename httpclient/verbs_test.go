package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/neto/observability"
)

func newRecording(t *testing.T, opts ...Option) (*Configuration, *recordingDoer) {
	t.Helper()
	doer := &recordingDoer{}
	base := []Option{WithBaseURL("https://example.com"), WithHeaders(), WithClient(doer)}
	return mustNew(t, append(base, opts...)...), doer
}

func TestVerbs_MethodAndURL(t *testing.T) {
	cfg, doer := newRecording(t)
	ctx := context.Background()

	calls := []struct {
		method string
		call   func() (*http.Response, error)
	}{
		{http.MethodGet, func() (*http.Response, error) { return cfg.Get(ctx, "/a", nil) }},
		{http.MethodDelete, func() (*http.Response, error) { return cfg.Delete(ctx, "/a", nil) }},
		{http.MethodPut, func() (*http.Response, error) { return cfg.Put(ctx, "/a", nil, nil) }},
		{http.MethodPatch, func() (*http.Response, error) { return cfg.Patch(ctx, "/a", nil, nil) }},
		{http.MethodPost, func() (*http.Response, error) { return cfg.Post(ctx, "/a", nil, nil) }},
		{"OPTIONS", func() (*http.Response, error) { return cfg.Do(ctx, "OPTIONS", "/a", nil, nil) }},
	}
	for i, c := range calls {
		resp, err := c.call()
		if err != nil {
			t.Fatalf("%s error: %v", c.method, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: unexpected status %d", c.method, resp.StatusCode)
		}
		req := doer.requests[i]
		if req.Method != c.method {
			t.Errorf("expected method %s, got %s", c.method, req.Method)
		}
		if req.URL.String() != "https://example.com/a" {
			t.Errorf("%s: unexpected url %s", c.method, req.URL)
		}
	}
	if len(doer.requests) != len(calls) {
		t.Errorf("expected one send per call, got %d", len(doer.requests))
	}
}

func TestGet_NoQueryNoBody(t *testing.T) {
	cfg, doer := newRecording(t)
	if _, err := cfg.Get(context.Background(), "/status", []Param{}); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	req := doer.requests[0]
	if req.URL.String() != "https://example.com/status" || req.URL.RawQuery != "" {
		t.Errorf("unexpected url %s", req.URL)
	}
	if doer.bodies[0] != "" {
		t.Errorf("expected no body, got %q", doer.bodies[0])
	}
}

func TestPut_QueryAndText(t *testing.T) {
	cfg, doer := newRecording(t)
	_, err := cfg.Put(context.Background(), "/item", []Param{{Name: "id", Value: "7"}}, TextBody("hello"))
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}
	req := doer.requests[0]
	if req.URL.String() != "https://example.com/item?id=7" {
		t.Errorf("unexpected url %s", req.URL)
	}
	if doer.bodies[0] != "hello" {
		t.Errorf("unexpected body %q", doer.bodies[0])
	}
}

func TestDo_DuplicateQueryKeys(t *testing.T) {
	cfg, doer := newRecording(t)
	query := []Param{{Name: "tag", Value: "a"}, {Name: "tag", Value: "b"}}
	if _, err := cfg.Get(context.Background(), "list", query); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got := doer.requests[0].URL.RawQuery; got != "tag=a&tag=b" {
		t.Errorf("unexpected query %q", got)
	}
}

func TestDo_UnsupportedCapabilityBeforeSend(t *testing.T) {
	cfg, doer := newRecording(t, WithCapabilities(AllCapabilities().Without(KindMultipart)))
	_, err := cfg.Post(context.Background(), "/upload", nil, MultipartBody{{Name: "f", Content: []byte("x"), FileName: "f.txt"}})
	if !IsUnsupportedCapability(err) {
		t.Fatalf("expected UNSUPPORTED_CAPABILITY, got %v", err)
	}
	if len(doer.requests) != 0 {
		t.Error("nothing should be sent when encoding fails")
	}
}

func TestDo_TransportError(t *testing.T) {
	cause := stderrors.New("connection refused")
	doer := &recordingDoer{err: cause}
	cfg := mustNew(t, WithBaseURL("https://example.com"), WithHeaders(), WithClient(doer))

	resp, err := cfg.Get(context.Background(), "/", nil)
	if resp != nil {
		t.Error("expected no response on transport failure")
	}
	if !IsTransport(err) {
		t.Fatalf("expected TRANSPORT_ERROR, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("transport error should unwrap to the cause")
	}
	if len(doer.requests) != 1 {
		t.Errorf("expected exactly one send, got %d", len(doer.requests))
	}
}

func TestDo_ReturnsResponseUnmodified(t *testing.T) {
	doer := &recordingDoer{status: http.StatusTeapot}
	cfg := mustNew(t, WithBaseURL("https://example.com"), WithHeaders(), WithClient(doer))
	resp, err := cfg.Get(context.Background(), "/", nil)
	if err != nil {
		t.Fatalf("non-2xx responses are not errors: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("unexpected status %d", resp.StatusCode)
	}
	if IsSuccess(resp) {
		t.Error("418 is not a success")
	}
}

func TestDo_CanceledContext(t *testing.T) {
	cfg := mustNew(t, WithBaseURL("https://example.com"), WithHeaders(), WithClient(&http.Client{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cfg.Get(ctx, "/", nil)
	if !IsTransport(err) || !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected a transport error wrapping context.Canceled, got %v", err)
	}
}

func TestDo_SpanAndMetrics(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewClientMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewClientMetrics error: %v", err)
	}

	doer := &recordingDoer{}
	cfg := mustNew(t,
		WithBaseURL("https://example.com"),
		WithHeaders(BearerAuth("s3cr3t")),
		WithClient(doer),
		WithMetrics(metrics),
	)
	if _, err := cfg.Post(context.Background(), "/items", nil, JSONBody{Value: map[string]int{"a": 1}}); err != nil {
		t.Fatalf("Post error: %v", err)
	}

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs[observability.AttrHTTPMethod] != http.MethodPost {
		t.Errorf("unexpected method attribute %q", attrs[observability.AttrHTTPMethod])
	}
	if attrs[observability.AttrBodyKind] != "json" {
		t.Errorf("unexpected body kind attribute %q", attrs[observability.AttrBodyKind])
	}
	if attrs[observability.AttrRequestID] == "" {
		t.Error("expected a request id attribute")
	}
	for k, v := range attrs {
		if strings.Contains(v, "s3cr3t") {
			t.Errorf("attribute %s leaked a header value", k)
		}
	}
	if doer.requests[0].Header.Get("X-Request-Id") != "" {
		t.Error("the correlation id must not be sent on the wire")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 1 {
		t.Errorf("expected 1 recorded request, got %d", total)
	}
}

func TestDo_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	cfg, _ := newRecording(t, WithLogger(bufferLogger(&buf)))
	if _, err := cfg.Get(context.Background(), "/status", nil); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"request completed", `"method":"GET"`, `"status_code":200`, `"request_id"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output %s", want, out)
		}
	}
}

func TestDo_LogCarriesRequestAndTraceID(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	cfg, _ := newRecording(t, WithLogger(bufferLogger(&buf)))
	if _, err := cfg.Get(context.Background(), "/status", nil); err != nil {
		t.Fatalf("Get error: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	var requestID string
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == observability.AttrRequestID {
			requestID = kv.Value.AsString()
		}
	}
	if requestID == "" || line["request_id"] != requestID {
		t.Errorf("log request_id %v does not match span attribute %q", line["request_id"], requestID)
	}
	if line["trace_id"] != spans[0].SpanContext().TraceID().String() {
		t.Errorf("log trace_id %v does not match span", line["trace_id"])
	}
}
