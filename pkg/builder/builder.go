package builder

import (
	core "github.com/goliatone/go-sitebuilder/components/builder"
)

// Service exposes the underlying components/builder.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Document re-exports the root document type.
type Document = core.Document

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}
