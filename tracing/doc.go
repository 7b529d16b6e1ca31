// Package tracing wraps OpenTelemetry so notebook commands can be recorded as
// spans. Until Init is called every span is a no-op.
package tracing
