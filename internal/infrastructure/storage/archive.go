// Package storage provides object storage implementations for archiving
// rendered report documents.
package storage

import "context"

// ReportArchive stores rendered report documents under a stable key and
// returns the location of the stored object.
type ReportArchive interface {
	// Store writes the document under the given key and returns the
	// object location (bucket URI or stub URL).
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Exists reports whether an object is already archived under the key.
	Exists(ctx context.Context, key string) (bool, error)
}
