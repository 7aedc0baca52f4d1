package service

import (
	"context"
	"io"
)

// ObjectStore persists uploaded file bytes under a key. The S3-backed
// implementation lives in the config package; tests provide an
// in-memory one.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}
