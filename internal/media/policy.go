package media

import (
	"errors"
	"fmt"
)

// Папки хранилища. Набор фиксированный, неизвестная папка отклоняется
// до каких-либо обращений к хранилищу.
const (
	FolderEvents  = "events"
	FolderGallery = "gallery"
	FolderBanners = "banners"
	FolderLogos   = "logos"
	FolderAvatars = "avatars"
	FolderTeam    = "team"
	FolderReviews = "reviews"
	FolderVideos  = "videos"
)

const (
	maxVideoSize      = 500 * 1024 * 1024 // админская загрузка
	maxProxyVideoSize = 100 * 1024 * 1024 // анонимная/прокси загрузка
)

// ErrValidation возвращается при некорректных входных данных; вызывающий
// слой отображает её в 400.
var ErrValidation = errors.New("validation failed")

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/avif": true,
}

var videoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/mpeg":      true,
	"video/x-msvideo": true,
}

// folderPolicy описывает ограничения одной папки. Для изображений потолок
// размера сознательно не задается: сжатием занимается клиент.
type folderPolicy struct {
	contentTypes map[string]bool
	maxSize      int64 // 0 — без ограничения
	proxyMaxSize int64 // лимит для анонимного пути, 0 — как maxSize
}

// Единая таблица политики. Обе ветки загрузки (прямая и presign) ходят
// сюда, чтобы списки не расходились между путями.
var folderPolicies = map[string]folderPolicy{
	FolderEvents:  {contentTypes: imageTypes},
	FolderGallery: {contentTypes: imageTypes},
	FolderBanners: {contentTypes: imageTypes},
	FolderLogos:   {contentTypes: imageTypes},
	FolderAvatars: {contentTypes: imageTypes},
	FolderTeam:    {contentTypes: imageTypes},
	FolderReviews: {contentTypes: imageTypes},
	FolderVideos:  {contentTypes: videoTypes, maxSize: maxVideoSize, proxyMaxSize: maxProxyVideoSize},
}

// validateUpload проверяет папку, тип и размер до любых сетевых вызовов.
func validateUpload(folder, contentType string, sizeBytes int64, anonymous bool) error {
	policy, ok := folderPolicies[folder]
	if !ok {
		return fmt.Errorf("%w: unknown folder %q", ErrValidation, folder)
	}

	if !policy.contentTypes[contentType] {
		return fmt.Errorf("%w: content type %q is not allowed in folder %q", ErrValidation, contentType, folder)
	}

	limit := policy.maxSize
	if anonymous && policy.proxyMaxSize > 0 {
		limit = policy.proxyMaxSize
	}
	if limit > 0 && sizeBytes > limit {
		return fmt.Errorf("%w: file size %d exceeds limit of %d bytes", ErrValidation, sizeBytes, limit)
	}

	return nil
}
