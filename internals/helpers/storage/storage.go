package storage

import (
	"context"
	"log"

	"devcamper_backend/internals/configs"
)

// Storage persists uploaded files and returns the public URL they are
// served from.
type Storage interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, name string) error
}

// New picks S3 when S3_BUCKET is set, local disk otherwise.
func New(ctx context.Context, cfg configs.Config) (Storage, error) {
	if cfg.S3Bucket != "" {
		s, err := NewS3(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] uploads stored in s3://%s", cfg.S3Bucket)
		return s, nil
	}
	log.Printf("[INFO] uploads stored in %s", cfg.FileUploadPath)
	return NewLocal(cfg.FileUploadPath, cfg.BaseURL+"/uploads")
}
