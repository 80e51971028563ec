// internal/app/system/media/media.go
//
// Package media stores uploaded project documents. The lifecycle
// service talks to the Store interface; failures there surface as
// collaborator errors (HTTP 500) because the caller can do nothing
// about a broken disk or bucket.
package media

import (
	"context"
	"io"
)

// StoredFile describes a successfully stored document.
type StoredFile struct {
	Name   string // original filename, as shown to users
	URL    string // public URL recorded on the project
	Format string // lowercased extension without the dot, e.g. "pdf"
}

// Store persists and removes uploaded documents.
type Store interface {
	// Upload writes the content of r under a new unique name and
	// returns its public location.
	Upload(ctx context.Context, filename string, r io.Reader) (StoredFile, error)

	// Delete removes a previously stored file by its public URL.
	// Deleting a URL this store did not issue is an error.
	Delete(ctx context.Context, url string) error
}
