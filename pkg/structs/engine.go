package structs

import (
	"context"
	"io"
)

// Engine is the aggregation surface the API serves. Implementations are
// read-only: a call never mutates cluster state and never fails because a
// dependency is down — sections degrade inside the returned report instead.
type Engine interface {
	Initialize(opts EngineOptions) error

	PlatformGet() (*Platform, error)

	SummaryGet(opts SummaryOptions) (*Summary, error)

	WithContext(ctx context.Context) Engine
}

type EngineOptions struct {
	Logs io.Writer
}
