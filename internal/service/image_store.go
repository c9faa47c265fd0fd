package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/moramnavadeep/FreshNCook/config"
)

// ImageStore uploads generated recipe images to object storage so
// clients receive a stable URL instead of a multi-megabyte data URI.
type ImageStore struct {
	s3Client *s3.Client
	bucket   string
}

// NewImageStore creates a new ImageStore instance, or nil when object
// storage is not configured.
func NewImageStore(cfg *config.S3Config) *ImageStore {
	if cfg == nil || cfg.Client == nil {
		return nil
	}
	return &ImageStore{s3Client: cfg.Client, bucket: cfg.BucketName}
}

// Upload stores PNG image bytes under a generated key and returns the
// object's public URL.
func (s *ImageStore) Upload(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
