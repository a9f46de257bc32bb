package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	crerr "github.com/cockroachdb/errors"
)

const maxObjectBytes = 32 << 20

// objectAPI is the subset of the S3 client the store uses.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	UsePathStyle    bool
}

// S3Store keeps documents as objects in one bucket, optionally under a key
// prefix. Works against any S3 compatible endpoint.
type S3Store struct {
	api    objectAPI
	bucket string
	prefix string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "auto"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return newS3Store(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Store(api objectAPI, bucket, prefix string) *S3Store {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3Store{api: api, bucket: strings.TrimSpace(bucket), prefix: prefix}
}

func (s *S3Store) Read(ctx context.Context, name string) (string, bool, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", false, err
	}

	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + name),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if crerr.As(err, &missing) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get object key=%s: %w", s.prefix+name, err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(out.Body, maxObjectBytes))
	if err != nil {
		return "", false, fmt.Errorf("read object key=%s: %w", s.prefix+name, err)
	}
	return string(raw), true, nil
}

func (s *S3Store) Write(ctx context.Context, name, content string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + name),
		Body:        strings.NewReader(content),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return fmt.Errorf("put object key=%s: %w", s.prefix+name, err)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	var (
		names []string
		token *string
	)
	for {
		out, err := s.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(s.prefix + prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list objects prefix=%s: %w", s.prefix+prefix, err)
		}
		for _, obj := range out.Contents {
			names = append(names, strings.TrimPrefix(aws.ToString(obj.Key), s.prefix))
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			return names, nil
		}
		token = out.NextContinuationToken
	}
}

func contentType(name string) string {
	if strings.HasSuffix(name, ".json") {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}
