package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"
	"github.com/itnewcomer/Memento/internal/logging"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) ([]byte, error) {
		out, err := c.GetObject(ctx, in)
		if err != nil {
			return nil, err
		}
		defer out.Body.Close()
		return io.ReadAll(out.Body)
	}
)

// ErrStoreDisabled is returned when no bucket is configured.
var ErrStoreDisabled = errors.New("remote backup store is not configured")

// S3Settings points backups at an S3-compatible bucket.
type S3Settings struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	// RetryTimeout bounds the total time spent retrying one transfer.
	RetryTimeout time.Duration
}

// BackupStore uploads and downloads archives.
type BackupStore struct {
	cfg    S3Settings
	logger logging.Logger
}

func NewBackupStore(cfg S3Settings, l logging.Logger) *BackupStore {
	return &BackupStore{cfg: cfg, logger: l.With("module", "backup_store")}
}

func (s *BackupStore) Enabled() bool {
	return s.cfg.Bucket != ""
}

// ArchiveKey names an object for an archive exported at t.
func ArchiveKey(t time.Time, f Format) string {
	return fmt.Sprintf("memento/%d/%02d/backup-%s.%s", t.Year(), int(t.Month()), t.UTC().Format("20060102T150405Z"), f)
}

func (s *BackupStore) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *BackupStore) policy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = s.cfg.RetryTimeout
	if exp.MaxElapsedTime <= 0 {
		exp.MaxElapsedTime = 30 * time.Second
	}
	return backoff.WithContext(exp, ctx)
}

// Upload puts data under key, retrying transient failures.
func (s *BackupStore) Upload(ctx context.Context, key string, data []byte) error {
	if !s.Enabled() {
		return ErrStoreDisabled
	}
	c, err := s.client(ctx)
	if err != nil {
		return fmt.Errorf("s3 client: %w", err)
	}

	op := func() error {
		return putObject(c, ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.cfg.Bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(data),
		})
	}
	notify := func(err error, wait time.Duration) {
		s.logger.Warn(ctx, "backup upload failed, retrying", "key", key, "wait", wait, "error", err)
	}
	if err := backoff.RetryNotify(op, s.policy(ctx), notify); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	s.logger.Info(ctx, "backup uploaded", "bucket", s.cfg.Bucket, "key", key, "bytes", len(data))
	return nil
}

// Download fetches the object stored under key.
func (s *BackupStore) Download(ctx context.Context, key string) ([]byte, error) {
	if !s.Enabled() {
		return nil, ErrStoreDisabled
	}
	c, err := s.client(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	var data []byte
	op := func() error {
		var err error
		data, err = getObject(c, ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.cfg.Bucket),
			Key:    aws.String(key),
		})
		return err
	}
	if err := backoff.Retry(op, s.policy(ctx)); err != nil {
		return nil, fmt.Errorf("download %s: %w", key, err)
	}
	return data, nil
}
