package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "filedepot/config"
	"filedepot/models"
)

// ArchiveService mirrors stored blobs to an S3 bucket. The database row
// stays the source of truth; archival is best effort and optional.
type ArchiveService struct {
	client *s3.Client
	bucket string
}

func NewArchiveService(cfg *appconfig.StorageConfig) (*ArchiveService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := context.TODO()

	var awsCfg aws.Config
	var err error

	if cfg.S3Endpoint != "" {
		// Custom endpoint (MinIO and friends)
		customResolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:           cfg.S3Endpoint,
					SigningRegion: cfg.S3Region,
				}, nil
			})

		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithEndpointResolverWithOptions(customResolver),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					cfg.S3AccessKey,
					cfg.S3SecretKey,
					"",
				),
			),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					cfg.S3AccessKey,
					cfg.S3SecretKey,
					"",
				),
			),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}

	return &ArchiveService{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
	}, nil
}

// ObjectKey generates a unique archive key preserving the extension.
func (s *ArchiveService) ObjectKey(filename string) string {
	return fmt.Sprintf("files/%s%s", uuid.New().String(), filepath.Ext(filename))
}

func (s *ArchiveService) Store(ctx context.Context, file *models.File) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(file.ArchiveKey),
		Body:          bytes.NewReader(file.Data),
		ContentType:   aws.String(file.Mimetype),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (s *ArchiveService) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
