package media

import (
	"bytes"
	"context"
	"strings"
	"time"

	"fotostudio/internal/storage"
)

// AssetRef — ссылка на объект в хранилище. Создается после успешной записи
// и между созданием и удалением неизменяема: замена ассета — это всегда
// новый ключ плюс удаление старого.
type AssetRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadService принимает файл, кладет его в хранилище и возвращает ссылку.
// Никаких записей в БД отсюда: метаданные сохраняет вызывающий слой уже
// после того, как загрузка вернула URL, чтобы ошибка хранилища не оставила
// полузаписанную строку.
type UploadService struct {
	gateway       storage.Gateway
	publicBaseURL string

	// подменяются в тестах
	now    func() time.Time
	suffix func() string
}

func NewUploadService(gateway storage.Gateway, publicBaseURL string) *UploadService {
	return &UploadService{
		gateway:       gateway,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
		suffix:        storage.RandomSuffix,
	}
}

// Upload загружает файл в указанную папку. Валидация выполняется строго до
// обращения к хранилищу; ошибка записи отдается вызывающему как есть,
// повторы — забота вызывающего.
func (s *UploadService) Upload(ctx context.Context, data []byte, fileName, contentType, folder string, anonymous bool) (*AssetRef, error) {
	if err := validateUpload(folder, contentType, int64(len(data)), anonymous); err != nil {
		return nil, err
	}

	if !s.gateway.IsAvailable() {
		return nil, storage.ErrStorageUnavailable
	}

	key := storage.DeriveKey(folder, fileName, s.now(), "")
	if err := s.gateway.Put(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return nil, err
	}

	return &AssetRef{
		URL: storage.PublicURL(s.publicBaseURL, key),
		Key: key,
	}, nil
}
