package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	defaultTimeout = 30 * time.Second
	uploadTimeout  = 10 * time.Minute
	maxPresignTTL  = time.Hour // потолок времени жизни подписанной ссылки
)

// Client предоставляет методы для работы с S3-совместимым хранилищем (R2).
// Конфигурация фиксируется при создании и дальше не меняется; один клиент
// безопасно используется из параллельных запросов.
type Client struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	available bool
}

// NewClient создает клиента хранилища. Без полной конфигурации клиент
// создается недоступным: все операции будут отвечать ErrStorageUnavailable,
// а не падать на сетевом вызове.
func NewClient(conf *Config) (*Client, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	if !conf.Complete() {
		log.Printf("[S3] Storage credentials are not configured, media operations are disabled")
		return &Client{}, nil
	}

	creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
		conf.AccessKeyID,
		conf.SecretAccessKey,
		"",
	))

	client := s3.New(s3.Options{
		BaseEndpoint:     aws.String(conf.Endpoint),
		Region:           conf.Region,
		Credentials:      creds,
		RetryMode:        aws.RetryModeAdaptive,
		RetryMaxAttempts: 3,
	})

	s3Client := &Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    conf.Bucket,
		available: true,
	}

	// Проверяем подключение к бакету
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := s3Client.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(conf.Bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to access bucket %s: %w", conf.Bucket, err)
	}

	return s3Client, nil
}

// IsAvailable сообщает, была ли конфигурация полной на момент создания.
func (c *Client) IsAvailable() bool {
	return c != nil && c.available
}

// Put загружает объект в хранилище
func (c *Client) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if !c.IsAvailable() {
		return ErrStorageUnavailable
	}
	if key == "" || body == nil {
		return fmt.Errorf("%w: key and body are required", ErrStorageWrite)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return nil
}

// Delete удаляет объект. Удаление несуществующего ключа бэкенд считает
// успехом, отдельная проверка существования не нужна.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.IsAvailable() {
		return ErrStorageUnavailable
	}
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrStorageWrite)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return nil
}

// PresignPut выдает подписанную ссылку на один PUT. Время жизни
// ограничивается сверху maxPresignTTL.
func (c *Client) PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error) {
	if !c.IsAvailable() {
		return "", ErrStorageUnavailable
	}
	if key == "" {
		return "", fmt.Errorf("%w: key is required", ErrStorageWrite)
	}
	if ttl <= 0 || ttl > maxPresignTTL {
		ttl = maxPresignTTL
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := c.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return req.URL, nil
}
