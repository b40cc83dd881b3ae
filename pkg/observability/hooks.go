// Package observability provides hooks for metrics, tracing, and logging.
//
// The pipeline reports the start and end of each stage through
// [PipelineHooks]. Nothing is recorded by default; main (or a test) can
// register an implementation at startup to feed a metrics backend without
// the domain packages importing one.
//
//	observability.SetPipelineHooks(&myHooks{})
//
//	observability.Pipeline().OnSampleStart(ctx, iterations)
//	// ... sample ...
//	observability.Pipeline().OnSampleComplete(ctx, len(points), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the chaos game pipeline.
type PipelineHooks interface {
	// Polygon events
	OnPolygonStart(ctx context.Context, edges int, radius float64)
	OnPolygonComplete(ctx context.Context, vertexCount int, duration time.Duration, err error)

	// Sample events
	OnSampleStart(ctx context.Context, iterations int)
	OnSampleComplete(ctx context.Context, pointCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, output string)
	OnRenderComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnPolygonStart(context.Context, int, float64)                   {}
func (NoopPipelineHooks) OnPolygonComplete(context.Context, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnSampleStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnSampleComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
// A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks. This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
