package media

import (
	"context"
	"log"
	"strings"

	"fotostudio/internal/storage"
)

// Coordinator убирает из хранилища объекты, ссылки на которые заменены.
// Вызывается только после того, как новая ссылка уже сохранена в БД:
// неудачная очистка оставляет сироту в хранилище, но никогда не ломает
// уже состоявшееся обновление записи.
type Coordinator struct {
	gateway       storage.Gateway
	publicBaseURL string
}

func NewCoordinator(gateway storage.Gateway, publicBaseURL string) *Coordinator {
	return &Coordinator{
		gateway:       gateway,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// CleanupOutcome — наблюдаемый результат очистки. Ошибки удаления попадают
// сюда как Reason и не поднимаются до вызывающего.
type CleanupOutcome struct {
	Deleted bool   `json:"deleted"`
	Reason  string `json:"reason,omitempty"`
}

// Supersede удаляет старый объект после замены ссылки на новую. Если ключ
// восстановить не удалось, объект не трогаем: осиротевший объект дешевле,
// чем удаленный чужой.
func (c *Coordinator) Supersede(ctx context.Context, oldRef, newRef string) CleanupOutcome {
	if oldRef == "" {
		return CleanupOutcome{Reason: "nothing to clean up"}
	}
	if oldRef == newRef {
		return CleanupOutcome{Reason: "reference unchanged"}
	}

	key, ok := c.resolveKey(oldRef)
	if !ok {
		log.Printf("[Media] Refusing to delete object for unrecognized reference %q", oldRef)
		return CleanupOutcome{Reason: "key resolution failed"}
	}

	if !c.gateway.IsAvailable() {
		return CleanupOutcome{Reason: "storage unavailable"}
	}

	if err := c.gateway.Delete(ctx, key); err != nil {
		log.Printf("[Media] Failed to delete superseded object %s: %v", key, err)
		return CleanupOutcome{Reason: err.Error()}
	}

	return CleanupOutcome{Deleted: true}
}

// Remove удаляет объект, принадлежавший удаленной записи.
func (c *Coordinator) Remove(ctx context.Context, ref string) CleanupOutcome {
	return c.Supersede(ctx, ref, "")
}

// resolveKey переводит сохраненную ссылку в ключ. Голый ключ используется
// как есть, URL разбирается строго относительно publicBaseURL.
func (c *Coordinator) resolveKey(ref string) (string, bool) {
	if strings.Contains(ref, "://") {
		return storage.DeriveKeyFromURL(ref, c.publicBaseURL)
	}
	key := strings.TrimLeft(ref, "/")
	return key, key != ""
}
