// Package storage is the blob store for uploaded images. Blobs are addressed
// by generated name; size and type checks belong to the caller. Two drivers
// are provided: local disk and S3-compatible object storage.
package storage

import (
	"context"
	"fmt"

	"warehouse-api/pkg/utils"
)

type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) bool
	URL(name string) string
}

// NewBlobStore builds the driver selected by STORAGE_DRIVER.
func NewBlobStore(config utils.StorageConfig) (BlobStore, error) {
	switch config.Driver {
	case "", "disk":
		return newDiskStore(config.Path)
	case "s3":
		return newS3Store(config)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", config.Driver)
	}
}
