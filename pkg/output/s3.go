package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultUploadTimeout bounds a single PUT to object storage
const DefaultUploadTimeout = 10 * time.Second

// Publisher stores an encoded render under a key
type Publisher interface {
	Publish(ctx context.Context, key string, img image.Image) error
}

// S3Config contains object storage connection settings
type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	ACL           string        // Canned ACL, empty for the bucket default
	UploadTimeout time.Duration // 0 = DefaultUploadTimeout
}

// S3ConfigFromEnv reads S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY,
// S3_SECRET_KEY and S3_ACL
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		ACL:       os.Getenv("S3_ACL"),
	}
}

// Validate checks that the bucket and region are set
func (c S3Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("S3 bucket is not set")
	}
	if c.Region == "" {
		return fmt.Errorf("S3 region is not set")
	}
	return nil
}

// S3Publisher uploads PNG renders to an S3-compatible bucket
type S3Publisher struct {
	client *s3.S3
	config S3Config
	logger core.Logger
}

// NewS3Publisher creates a publisher using static credentials and path-style addressing
func NewS3Publisher(config S3Config, logger core.Logger) (*S3Publisher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.UploadTimeout == 0 {
		config.UploadTimeout = DefaultUploadTimeout
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3Publisher{
		client: s3.New(sess),
		config: config,
		logger: core.LoggerOrNop(logger),
	}, nil
}

// Publish encodes img as PNG and uploads it under key
func (p *S3Publisher) Publish(ctx context.Context, key string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	}
	if p.config.ACL != "" {
		input.ACL = aws.String(p.config.ACL)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to bucket %s (%d bytes)\n", key, p.config.Bucket, size)
	return nil
}
