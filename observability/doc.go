// Package observability provides OpenTelemetry tracing and metrics for
// outbound HTTP requests.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartClientSpan(ctx, http.MethodGet, url)
//	defer observability.EndClientSpan(span, resp, err)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewClientMetrics(observability.Meter("neto"))
//	metrics.RecordRequest(ctx, http.MethodGet, 200, elapsed)
package observability
