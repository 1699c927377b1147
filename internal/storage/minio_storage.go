package storage

import (
	"context"
	"io"
	"log"

	"github.com/edustream/videos-ms-go/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements the blob-storage contract against a MinIO (or
// S3-compatible) endpoint. Containers map to buckets; every upload gets its
// own input and poster containers, so bucket creation happens at runtime.
type MinioStorage struct {
	client minioClient
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client}, nil
}

func (s *MinioStorage) CreateContainer(ctx context.Context, container string) error {
	ok, err := s.client.BucketExists(ctx, container)
	if err != nil {
		return mapMinioErr(err)
	}
	if ok {
		return nil
	}
	log.Printf("container %q does not exist, creating it...", container)
	if err := s.client.MakeBucket(ctx, container, minio.MakeBucketOptions{}); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, container, fileKey string, reader io.Reader, fileSize int64, contentType string) error {
	log.Printf("saving file %q into container %q...", fileKey, container)

	opts := minio.PutObjectOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}
	if _, err := s.client.PutObject(ctx, container, fileKey, reader, fileSize, opts); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) GetFile(ctx context.Context, container, fileKey string) (io.ReadCloser, error) {
	log.Printf("getting file %q from container %q...", fileKey, container)

	obj, err := s.client.GetObject(ctx, container, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *MinioStorage) StatFile(ctx context.Context, container, fileKey string) (port.FileInfo, error) {
	log.Printf("getting stats on file %q in container %q...", fileKey, container)

	info, err := s.client.StatObject(ctx, container, fileKey, minio.StatObjectOptions{})
	if err != nil {
		return port.FileInfo{}, mapMinioErr(err)
	}
	return port.FileInfo{
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *MinioStorage) RemoveFile(ctx context.Context, container, fileKey string) error {
	log.Printf("removing file %q from container %q...", fileKey, container)

	return mapMinioErr(s.client.RemoveObject(ctx, container, fileKey, minio.RemoveObjectOptions{}))
}
