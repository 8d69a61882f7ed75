// Package tracer provides a lightweight tracing abstraction for the registry.
//
// It defines an internal tracer interface that doesn't depend directly on
// OpenTelemetry APIs, so the verification engine can emit distributed traces
// while staying decoupled from a specific tracing implementation.
//
// Implementations:
//   - NoopTracer: for tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes. The
	// returned context contains the new span and should be passed to child
	// operations.
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an int attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the registry.
const (
	SpanFileRequest      = "registry.request.file"
	SpanRegisterCustomer = "registry.customer.register"
	SpanAmendCustomer    = "registry.customer.amend"
	SpanRemoveCustomer   = "registry.customer.remove"
	SpanVote             = "registry.customer.vote"
	SpanReportBank       = "registry.bank.report"
)

// Attribute keys used by the registry.
const (
	AttrCaller   = "caller"
	AttrUserName = "user_name"
	AttrBank     = "bank"
	AttrVerified = "verified"
	AttrUpvote   = "upvote"
	AttrCacheHit = "cache.hit"
)

// Event names used by the registry.
const (
	EventAuditEmitted = "audit.emitted"
	EventSuspended    = "bank.suspended"
)
