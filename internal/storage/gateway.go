// gateway.go
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Ошибки хранилища. ErrStorageUnavailable означает отсутствие конфигурации
// и фиксируется один раз при создании клиента, ErrStorageWrite — любую
// ошибку бэкенда при записи или удалении.
var (
	ErrStorageUnavailable = errors.New("object storage is not configured")
	ErrStorageWrite       = errors.New("object storage operation failed")
)

// Gateway определяет операции S3-совместимого хранилища, используемые
// остальными пакетами. Ошибки бэкенда отдаются вызывающему как есть,
// без повторов и без проглатывания.
type Gateway interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error)
	IsAvailable() bool
}
