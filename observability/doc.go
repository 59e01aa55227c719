// Package observability wires the OpenTelemetry trace pipeline for Triton
// clients and exposes a health model fed by discovery status.
//
//	tp, err := observability.Init(ctx, observability.Config{ServiceName: "vmapi"})
//	defer tp.Shutdown(ctx)
//
// Once initialized, the HTTP client layer records a span per request on the
// global tracer provider.
package observability
