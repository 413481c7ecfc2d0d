package observability

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("billing")
	if cfg.ServiceName != "billing" {
		t.Errorf("expected service name billing, got %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("billing")
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected 15s interval, got %v", cfg.Interval)
	}
	if !cfg.Insecure {
		t.Error("expected insecure by default")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tt := range tests {
		if got := sampler(tt.rate).Description(); got != tt.want {
			t.Errorf("sampler(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
	if got := sampler(0.5).Description(); got == "AlwaysOnSampler" || got == "AlwaysOffSampler" {
		t.Errorf("expected ratio sampler, got %q", got)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("billing", "2.0.0", "staging")
	if err != nil {
		t.Fatalf("newResource failed: %v", err)
	}
	v, ok := attrValue(res.Attributes(), "service.name")
	if !ok || v.AsString() != "billing" {
		t.Errorf("expected service.name=billing, got %v", v.AsString())
	}
	v, ok = attrValue(res.Attributes(), "deployment.environment")
	if !ok || v.AsString() != "staging" {
		t.Errorf("expected deployment.environment=staging, got %v", v.AsString())
	}
}

func TestInitTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tp, err := InitTracer(context.Background(), DefaultTracerConfig("test"))
	if err != nil {
		t.Skipf("exporter unavailable: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	prev := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	mp, err := InitMeter(context.Background(), DefaultMeterConfig("test"))
	if err != nil {
		t.Skipf("exporter unavailable: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = mp.Shutdown(ctx)
}

func TestStartClientSpan_Attributes(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartClientSpan(context.Background(), http.MethodGet, "https://api.example.com/users",
		attribute.String(AttrRequestID, "abc"))
	EndClientSpan(span, &http.Response{StatusCode: 200, Status: "200 OK"}, nil)

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name() != SpanHTTPRequest {
		t.Errorf("expected span name %q, got %q", SpanHTTPRequest, s.Name())
	}
	if s.SpanKind() != trace.SpanKindClient {
		t.Errorf("expected client span, got %v", s.SpanKind())
	}
	if v, _ := attrValue(s.Attributes(), AttrHTTPMethod); v.AsString() != "GET" {
		t.Errorf("expected method GET, got %q", v.AsString())
	}
	if v, _ := attrValue(s.Attributes(), AttrURLFull); v.AsString() != "https://api.example.com/users" {
		t.Errorf("unexpected url %q", v.AsString())
	}
	if v, _ := attrValue(s.Attributes(), AttrStatusCode); v.AsInt64() != 200 {
		t.Errorf("expected status 200, got %d", v.AsInt64())
	}
	if v, _ := attrValue(s.Attributes(), AttrRequestID); v.AsString() != "abc" {
		t.Errorf("expected request id abc, got %q", v.AsString())
	}
	if s.Status().Code == codes.Error {
		t.Error("successful request should not mark span as error")
	}
}

func TestEndClientSpan_Error(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartClientSpan(context.Background(), http.MethodPost, "https://api.example.com")
	EndClientSpan(span, nil, errors.New("connection refused"))

	s := rec.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", s.Status().Code)
	}
	if len(s.Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}

func TestEndClientSpan_ServerError(t *testing.T) {
	rec := withRecorder(t)

	_, span := StartClientSpan(context.Background(), http.MethodGet, "https://api.example.com")
	EndClientSpan(span, &http.Response{StatusCode: 503, Status: "503 Service Unavailable"}, nil)

	if got := rec.Ended()[0].Status().Code; got != codes.Error {
		t.Errorf("expected 5xx to mark span as error, got %v", got)
	}
}

func TestClientMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewClientMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewClientMetrics failed: %v", err)
	}

	ctx := context.Background()
	m.RecordRequest(ctx, http.MethodGet, 200, 50*time.Millisecond)
	m.RecordRequest(ctx, http.MethodGet, 200, 10*time.Millisecond)
	m.RecordError(ctx, http.MethodPost, "TRANSPORT_ERROR")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			found[md.Name] = true
			if md.Name == "http.client.request.total" {
				sum, ok := md.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("unexpected data type %T", md.Data)
				}
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				if total != 2 {
					t.Errorf("expected 2 requests, got %d", total)
				}
			}
		}
	}
	for _, name := range []string{"http.client.request.total", "http.client.request.duration", "http.client.error.total"} {
		if !found[name] {
			t.Errorf("metric %s not collected", name)
		}
	}
}

func TestClientMetrics_NilSafe(t *testing.T) {
	var m *ClientMetrics
	m.RecordRequest(context.Background(), http.MethodGet, 200, time.Millisecond)
	m.RecordError(context.Background(), http.MethodGet, "X")
}
