package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jonathan/portfolio-cv/internal/logger"
)

// MinIOConfig holds S3-compatible connection settings.
type MinIOConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
	SecretAccessKey string `json:"-" yaml:"-"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	Region          string `json:"region,omitempty" yaml:"region,omitempty"`
	Prefix          string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	UseSSL          bool   `json:"use_ssl" yaml:"use_ssl"`
}

// objectClient is the subset of *minio.Client used by MinIOStore.
type objectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinIOStore uploads artifacts to a bucket.
type MinIOStore struct {
	client objectClient
	bucket string
	prefix string
}

// NewMinIOStore connects to the endpoint and makes sure the bucket exists.
func NewMinIOStore(ctx context.Context, cfg MinIOConfig) (*MinIOStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return newMinIOStore(ctx, client, cfg)
}

func newMinIOStore(ctx context.Context, client objectClient, cfg MinIOConfig) (*MinIOStore, error) {
	s := &MinIOStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}
	if err := s.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinIOStore) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	logger.Ctx(ctx).Info().Str("bucket", s.bucket).Msg("created bucket")
	return nil
}

// Put implements Store. The returned location is "bucket/key".
func (s *MinIOStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	key, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType(key)})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", s.bucket, key, err)
	}
	logger.Ctx(ctx).Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Str("etag", info.ETag).
		Int64("size", info.Size).
		Msg("uploaded artifact")
	return s.bucket + "/" + key, nil
}
