// Package store implements the durable-document layer of the PopX identity
// vault. A document is a single named unit of storage that is read and
// replaced wholesale; there are no partial or append writes.
package store

import "context"

// Store persists named documents. Implementations must make Save atomic
// (a failed write leaves the previous document intact) and must treat an
// undecodable document as absent rather than failing the read.
type Store interface {
	// Load decodes the named document into out. It returns false when the
	// document does not exist or cannot be decoded.
	Load(ctx context.Context, name string, out any) (bool, error)

	// Save replaces the named document wholesale.
	Save(ctx context.Context, name string, v any) error

	// Delete removes the named document. Deleting an absent document is
	// not an error.
	Delete(ctx context.Context, name string) error
}
