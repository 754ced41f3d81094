package port

import "context"

// ObjectStorage abstracts read access to the document store.
// Download returns domain.ErrObjectNotFound when the key does not exist and
// domain.ErrDocumentTooLarge when the object exceeds maxBytes.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error)
	Close() error
}
