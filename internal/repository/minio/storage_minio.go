package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage puts diary photos into MinIO buckets and hands back their public URL.
type Storage struct {
	client    *minio.Client
	publicURL string
	useSSL    bool
}

func NewStorage(client *minio.Client, publicURL string, useSSL bool) *Storage {
	return &Storage{
		client:    client,
		publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/"),
		useSSL:    useSSL,
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio: put %s/%s: %w", bucket, objectName, err)
	}
	return s.objectURL(bucket, objectName), nil
}

func (s *Storage) Remove(ctx context.Context, bucket, objectName string) error {
	return s.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func (s *Storage) objectURL(bucket, objectName string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + bucket + "/" + strings.TrimLeft(objectName, "/")
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, bucket, strings.TrimLeft(objectName, "/"))
}

var _ ports.ObjectStorage = (*Storage)(nil)
