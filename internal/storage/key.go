package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeriveKey строит ключ объекта вида {folder}/{millis}-{suffix-}{fileName}.
// Функция чистая: при одинаковых аргументах результат одинаков. Суффикс
// передается в путях presign/batch, чтобы два файла с одним именем в одну
// миллисекунду не столкнулись; в одиночной загрузке он пустой.
func DeriveKey(folder, fileName string, now time.Time, suffix string) string {
	name := filepath.Base(strings.TrimSpace(fileName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "file"
	}
	if suffix != "" {
		return fmt.Sprintf("%s/%d-%s-%s", folder, now.UnixMilli(), suffix, name)
	}
	return fmt.Sprintf("%s/%d-%s", folder, now.UnixMilli(), name)
}

// RandomSuffix возвращает короткий случайный суффикс для ключа.
func RandomSuffix() string {
	return uuid.NewString()[:8]
}

// PublicURL строит публичный URL объекта. URL нигде не хранится отдельно
// от ключа — он всегда выводится заново.
func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}

// DeriveKeyFromURL восстанавливает ключ из публичного URL. Для URL вне
// baseURL возвращает false: угадывать ключ по чужому адресу нельзя,
// ошибочная догадка может удалить чужой объект.
func DeriveKeyFromURL(rawURL, baseURL string) (string, bool) {
	base := strings.TrimRight(baseURL, "/")
	if base == "" || !strings.HasPrefix(rawURL, base) {
		return "", false
	}
	rest := strings.TrimPrefix(rawURL, base)
	if !strings.HasPrefix(rest, "/") {
		return "", false
	}
	key := strings.TrimPrefix(rest, "/")
	if key == "" {
		return "", false
	}
	return key, true
}
