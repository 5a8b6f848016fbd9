// Package telemetry provides the telemetry adapters and selects the one the
// application records with.
package telemetry

import (
	"context"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := noOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Log(domain.LogLevel, string) {}

func (noOpVertex) Complete(error) {}

func (noOpVertex) Cached() {}
