package mocks

import (
	"context"
	"repnowait/infras/otel"

	"go.opentelemetry.io/otel/attribute"
)

type otelImpl struct{}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel returns a tracer that records nothing.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

type scopeImpl struct{}

func (s *scopeImpl) AddEvent(_ string, _ ...attribute.KeyValue) {}
func (s *scopeImpl) End()                                       {}
func (s *scopeImpl) SetAttribute(_ string, _ any)               {}
func (s *scopeImpl) SetAttributes(_ map[string]any)             {}
func (s *scopeImpl) TraceError(_ error)                         {}
func (s *scopeImpl) TraceIfError(_ error)                       {}
func (s *scopeImpl) TraceID() string                            { return "" }

func NewScope() otel.Scope {
	return &scopeImpl{}
}
