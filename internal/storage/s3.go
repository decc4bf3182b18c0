package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"reptrack/reptrack/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store is an optional cloud backup KeyValueStore: one object per slot key
// under a fixed prefix, overwritten whole on every write. Works against any
// S3-compatible endpoint (MinIO, Spaces) via path-style addressing.
type S3Store struct {
	client     *s3.Client
	bucketName string
	keyPrefix  string
}

// NewS3Store builds an S3 client from the given config.
func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)

	// Custom resolver for S3-compatible endpoints (like MinIO, DigitalOcean Spaces)
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if endpoint != "" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           endpoint,
				SigningRegion: cfg.Region,
			}, nil
		}
		// Fall back to default AWS endpoint resolution if no custom endpoint is set
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(context.TODO(),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		awsCfg.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws sdk config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		o.UsePathStyle = true // required by most S3-compatible services
	})

	prefix := cfg.KeyPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &S3Store{
		client:     s3Client,
		bucketName: cfg.BucketName,
		keyPrefix:  prefix,
	}, nil
}

// endpointURL prepends a scheme to a bare custom endpoint. An endpoint that
// already carries one is used as-is.
func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func (s *S3Store) objectKey(key string) string {
	return s.keyPrefix + key
}

// Available probes the bucket on every call; the backup target being
// unreachable must degrade writes to warnings, not failures.
func (s *S3Store) Available(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := s.client.HeadBucket(probeCtx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	})
	return err == nil
}

func (s *S3Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot object %q: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("read slot object body %q: %w", key, err)
	}
	return string(payload), true, nil
}

func (s *S3Store) SetItem(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.objectKey(key)),
		Body:        strings.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("write slot object %q: %w", key, err)
	}
	return nil
}

func (s *S3Store) RemoveItem(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return fmt.Errorf("remove slot object %q: %w", key, err)
	}
	return nil
}
