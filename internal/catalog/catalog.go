// Package catalog provides the durable store of generated mesh files and
// its SQLite-backed implementation.
package catalog

import (
	"context"
	"fmt"

	"github.com/rcliao/stl-forge/internal/model"
)

// StoreParams holds the metadata fields for a new catalogue entry.
type StoreParams struct {
	ModelType     model.ModelType
	TriangleCount int
	Category      string
	Prompt        string
}

// NotFoundError reports a filename with no catalogue entry.
type NotFoundError struct {
	Filename string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Filename)
}

// Stats holds catalogue statistics.
type Stats struct {
	Dir        string      `json:"dir"`
	TotalFiles int         `json:"total_files"`
	TotalBytes int64       `json:"total_bytes"`
	ByType     []TypeStats `json:"by_type"`
}

// TypeStats holds per-model-type counts.
type TypeStats struct {
	ModelType model.ModelType `json:"model_type"`
	Count     int             `json:"count"`
	Bytes     int64           `json:"bytes"`
}

// Catalog is the durable store of generated mesh files. Payloads are
// immutable once stored and addressed by their unique filename, so reads
// never need to coordinate with unrelated stores.
type Catalog interface {
	// Store persists payload under a fresh collision-resistant filename and
	// commits its metadata record atomically. Concurrent calls never
	// collide on filenames.
	Store(ctx context.Context, payload []byte, p StoreParams) (*model.FileRecord, error)

	// List returns all committed records, newest first. Entries still being
	// stored are never visible.
	List(ctx context.Context) ([]model.FileRecord, error)

	// Get returns the payload stored under filename, or a *NotFoundError.
	Get(ctx context.Context, filename string) ([]byte, error)

	// Stats returns catalogue statistics.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the catalogue.
	Close() error
}
