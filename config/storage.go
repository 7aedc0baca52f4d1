package config

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaStore holds the S3 client and bucket for uploaded images.
type MediaStore struct {
	client *s3.Client
	bucket string
}

// NewMediaStore initializes the S3 client from the environment or
// shared AWS config.
func NewMediaStore(ctx context.Context, cfg *Config) (*MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return &MediaStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.MediaBucket,
	}, nil
}

// Put uploads an object under the given key.
func (s *MediaStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}
