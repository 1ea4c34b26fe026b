// Package storage keeps product images in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"shop/config"
	"shop/internal/domain/service"
	"shop/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket. A gocloud URL wins over the S3 block;
// without either, images are kept in memory.
func NewBucket(params Params) (*blob.Bucket, error) {
	cfg := params.Config.Storage

	bucket, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

func openBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, error) {
	switch {
	case cfg != nil && cfg.URL != "":
		bucket, err := blob.OpenBucket(ctx, cfg.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.URL)
		}

		return bucket, nil
	case cfg != nil && cfg.S3 != nil && cfg.S3.Bucket != "":
		return openS3Bucket(ctx, cfg.S3)
	default:
		return blob.OpenBucket(ctx, "mem://")
	}
}

// openS3Bucket targets any S3-compatible endpoint with static credentials.
func openS3Bucket(ctx context.Context, cfg *config.S3Config) (*blob.Bucket, error) {
	options := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: true,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
				Source:          "shop-config",
			}, nil
		})),
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	bucket, err := s3blob.OpenBucket(ctx, s3.New(options), cfg.Bucket, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open S3 bucket %s", cfg.Bucket)
	}

	return bucket, nil
}

type blobImageStorage struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// NewImageStorage builds the ImageStorage used by the product usecase.
func NewImageStorage(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) service.ImageStorage {
	baseURL := ""
	if cfg.Storage != nil {
		baseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &blobImageStorage{bucket: bucket, baseURL: baseURL, logger: logger}
}

func (s *blobImageStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if err := s.bucket.Upload(ctx, key, r, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.baseURL + "/" + key, nil
}

// Delete is idempotent; a missing object is not an error.
func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Debug("image already gone", slog.String("key", key))

			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
