package preview

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/h2non/bimg"

	"fotostudio/internal/storage"
)

const (
	maxImageSize  = 1024        // максимальный размер превью в пикселях
	jpegQuality   = 85          // качество JPEG
	previewPrefix = "previews/" // префикс для превью в хранилище
)

// Service готовит облегченные копии фотографий для сетки галереи.
// Оригинал остается как есть, превью живет рядом под своим ключом и
// удаляется вместе с ним.
type Service struct {
	gateway       storage.Gateway
	publicBaseURL string
}

func NewService(gateway storage.Gateway, publicBaseURL string) *Service {
	return &Service{
		gateway:       gateway,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// PreviewKey возвращает ключ превью для ключа оригинала.
func PreviewKey(key string) string {
	return previewPrefix + key
}

// Generate создает уменьшенную JPEG-копию изображения и кладет ее в
// хранилище. Возвращает публичный URL превью.
func (s *Service) Generate(ctx context.Context, key string, data []byte) (string, error) {
	optimized, err := s.optimizeImage(data)
	if err != nil {
		return "", err
	}

	previewKey := PreviewKey(key)
	if err := s.gateway.Put(ctx, previewKey, bytes.NewReader(optimized), "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to store preview: %w", err)
	}

	return storage.PublicURL(s.publicBaseURL, previewKey), nil
}

// Remove удаляет превью оригинала, если оно было.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.gateway.Delete(ctx, PreviewKey(key))
}

// optimizeImage приводит изображение к размеру превью
func (s *Service) optimizeImage(data []byte) ([]byte, error) {
	image := bimg.NewImage(data)

	size, err := image.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to get image size: %w", err)
	}

	width, height := size.Width, size.Height
	if width > maxImageSize || height > maxImageSize {
		width, height = calculateNewDimensions(size.Width, size.Height, maxImageSize)
	}

	processed, err := image.Process(bimg.Options{
		Width:   width,
		Height:  height,
		Quality: jpegQuality,
		Type:    bimg.JPEG,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	return processed, nil
}

// calculateNewDimensions вычисляет новые размеры с сохранением пропорций
func calculateNewDimensions(width, height, maxSize int) (newWidth, newHeight int) {
	if width > height {
		newWidth = maxSize
		newHeight = (height * maxSize) / width
	} else {
		newHeight = maxSize
		newWidth = (width * maxSize) / height
	}
	return
}
