package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored blob.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage defines the blob-storage operations the pipeline needs. Containers
// are created per upload, so every call carries the container name.
type Storage interface {
	CreateContainer(ctx context.Context, container string) error
	SaveFile(ctx context.Context, container, fileKey string, reader io.Reader, fileSize int64, contentType string) error
	GetFile(ctx context.Context, container, fileKey string) (io.ReadCloser, error)
	StatFile(ctx context.Context, container, fileKey string) (FileInfo, error)
	RemoveFile(ctx context.Context, container, fileKey string) error
}
