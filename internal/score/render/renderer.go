package render

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrRenderFailed is returned when any stage of the render pipeline fails.
// The pipeline is all-or-nothing: single attempt, no partial results.
var ErrRenderFailed = errors.New("render: failed to produce page image")

// Renderer produces a public image URL for the first page of a score.
type Renderer interface {
	Render(ctx context.Context, pdfURL, title string) (string, error)
}

// ObjectStore is the storage capability the page pipeline needs.
type ObjectStore interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error
	PublicURL(objectName string) string
}

// Cache is an optional lookaside cache mapping a document digest to the URL
// of its already rendered page.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
