package media

import (
	"context"
	"time"

	"fotostudio/internal/storage"
)

const presignTTL = time.Hour

// PresignedUpload — подписанная ссылка для прямой загрузки из браузера.
// PublicURL оптимистичен: он вычислен до самой загрузки и действителен
// только после того, как браузерный PUT по UploadURL завершился успешно.
// Сохранять PublicURL в БД можно лишь после подтверждения этого PUT.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}

// IssuePresignedUpload выдает ссылку на прямой PUT, не трогая тело файла.
// Валидация та же, что и в прямой загрузке, и выполняется до подписи:
// подписывать заведомо недопустимый запрос незачем.
func (s *UploadService) IssuePresignedUpload(ctx context.Context, fileName, contentType, folder string) (*PresignedUpload, error) {
	if err := validateUpload(folder, contentType, 0, false); err != nil {
		return nil, err
	}

	if !s.gateway.IsAvailable() {
		return nil, storage.ErrStorageUnavailable
	}

	// Суффикс защищает от коллизий двух загрузок в одну миллисекунду
	key := storage.DeriveKey(folder, fileName, s.now(), s.suffix())

	uploadURL, err := s.gateway.PresignPut(ctx, key, contentType, presignTTL)
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: storage.PublicURL(s.publicBaseURL, key),
	}, nil
}
