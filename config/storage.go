package config

import (
	"fmt"
	"os"
)

// StorageConfig describes the optional off-site archive for stored blobs.
type StorageConfig struct {
	Type        string // none or s3
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3Bucket    string
	S3Endpoint  string // optional, for MinIO and friends
}

func LoadStorageConfig() *StorageConfig {
	storageType := os.Getenv("ARCHIVE_STORAGE_TYPE")
	if storageType == "" {
		storageType = "none"
	}

	return &StorageConfig{
		Type:        storageType,
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
	}
}

func (c *StorageConfig) Validate() error {
	if c.Type == "s3" {
		if c.S3AccessKey == "" {
			return fmt.Errorf("S3_ACCESS_KEY is not set")
		}
		if c.S3SecretKey == "" {
			return fmt.Errorf("S3_SECRET_KEY is not set")
		}
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is not set")
		}
	}
	return nil
}

func (c *StorageConfig) IsS3Enabled() bool {
	return c.Type == "s3"
}
