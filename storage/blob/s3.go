package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client the store calls.
type S3API interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Config holds explicit construction parameters. Empty credentials fall
// back to the default AWS chain.
type S3Config struct {
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint"` // MinIO and other S3-compatible servers
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PathStyle       bool   `mapstructure:"path_style"`
}

// S3 is a Store on one bucket; keys are prefixed with the configured
// prefix.
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 builds a client from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("blob.NewS3: bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("blob.NewS3: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewS3WithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewS3WithClient wraps an existing client.
func NewS3WithClient(client S3API, bucket, prefix string) *S3 {
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Driver returns DriverS3.
func (s *S3) Driver() Driver { return DriverS3 }

func (s *S3) objectKey(key string) (string, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}

	return s.prefix + k, nil
}

// Put stores a new object, emulating create-only with a HEAD first.
func (s *S3) Put(ctx context.Context, key string, r io.Reader, meta map[string]string) (Info, error) {
	ok, err := s.objectKey(key)
	if err != nil {
		return Info{}, err
	}
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &ok}); err == nil {
		return Info{}, fmt.Errorf("blob.S3.Put(%s): %w", key, ErrExists)
	} else if !isNotFound(err) {
		return Info{}, fmt.Errorf("blob.S3.Put(%s): %w", key, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, fmt.Errorf("blob.S3.Put(%s): %w", key, err)
	}
	in := &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &ok,
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
		Metadata:      cloneMetadata(meta),
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return Info{}, fmt.Errorf("blob.S3.Put(%s): %w", key, err)
	}

	return Info{Key: key, Size: int64(len(data)), Metadata: cloneMetadata(meta), LastModified: time.Now().UTC()}, nil
}

// Get streams the object body.
func (s *S3) Get(ctx context.Context, key string) (Info, io.ReadCloser, error) {
	ok, err := s.objectKey(key)
	if err != nil {
		return Info{}, nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &ok})
	if isNotFound(err) {
		return Info{}, nil, fmt.Errorf("blob.S3.Get(%s): %w", key, ErrNotFound)
	}
	if err != nil {
		return Info{}, nil, fmt.Errorf("blob.S3.Get(%s): %w", key, err)
	}

	return Info{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		Metadata:     out.Metadata,
		LastModified: aws.ToTime(out.LastModified),
	}, out.Body, nil
}

// Delete removes the object, probing first so the existence flag is
// accurate.
func (s *S3) Delete(ctx context.Context, key string) (bool, error) {
	ok, err := s.objectKey(key)
	if err != nil {
		return false, err
	}
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &ok}); isNotFound(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("blob.S3.Delete(%s): %w", key, err)
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &ok}); err != nil {
		return false, fmt.Errorf("blob.S3.Delete(%s): %w", key, err)
	}

	return true, nil
}

// List pages through ListObjectsV2. Metadata is not fetched.
func (s *S3) List(ctx context.Context, prefix string) ([]Info, error) {
	full := s.prefix + prefix
	var out []Info
	var token *string
	for {
		page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            &s.bucket,
			Prefix:            &full,
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("blob.S3.List(%s): %w", prefix, err)
		}
		for _, obj := range page.Contents {
			out = append(out, Info{
				Key:          aws.ToString(obj.Key)[len(s.prefix):],
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
		if !aws.ToBool(page.IsTruncated) || page.NextContinuationToken == nil {
			break
		}
		token = page.NextContinuationToken
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	var nf *types.NotFound

	return errors.As(err, &nsk) || errors.As(err, &nf)
}
