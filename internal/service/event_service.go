package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/media"
	"fotostudio/internal/preview"
	"fotostudio/internal/repository"
)

// EventService управляет съемками портфолио и их фотографиями. Порядок
// всегда один: сначала объект в хранилище, потом строка в БД, и только
// после успешной записи строки — очистка замененного объекта.
type EventService struct {
	eventRepo *repository.EventRepository
	photoRepo *repository.PhotoRepository
	uploads   *media.UploadService
	previews  *preview.Service
	cleanup   *media.Coordinator
}

func NewEventService(
	eventRepo *repository.EventRepository,
	photoRepo *repository.PhotoRepository,
	uploads *media.UploadService,
	previews *preview.Service,
	cleanup *media.Coordinator,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		photoRepo: photoRepo,
		uploads:   uploads,
		previews:  previews,
		cleanup:   cleanup,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.Title == "" || event.Slug == "" {
		return fmt.Errorf("%w: title and slug are required", media.ErrValidation)
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return s.eventRepo.Create(ctx, event)
}

// UpdateEvent обновляет съемку. Если обложка заменена, старый объект
// удаляется после фиксации новой ссылки в БД.
func (s *EventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if event.Title == "" || event.Slug == "" {
		return fmt.Errorf("%w: title and slug are required", media.ErrValidation)
	}

	current, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return err
	}

	// Очистка строго после успешного обновления записи
	oldRef := current.CoverKey
	if oldRef == "" {
		oldRef = current.CoverURL
	}
	newRef := event.CoverKey
	if newRef == "" {
		newRef = event.CoverURL
	}
	if outcome := s.cleanup.Supersede(ctx, oldRef, newRef); outcome.Deleted {
		log.Printf("[Events] Removed superseded cover for event %s", event.ID)
	}

	return nil
}

// DeleteEvent удаляет съемку вместе с фотографиями. Строки уходят каскадом,
// объекты в хранилище убираются по принципу best effort.
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	photos, err := s.photoRepo.ListByEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	if event.CoverKey != "" || event.CoverURL != "" {
		ref := event.CoverKey
		if ref == "" {
			ref = event.CoverURL
		}
		s.cleanup.Remove(ctx, ref)
	}
	for _, photo := range photos {
		s.cleanup.Remove(ctx, photo.Key)
		if err := s.previews.Remove(ctx, photo.Key); err != nil {
			log.Printf("[Events] Failed to remove preview for %s: %v", photo.Key, err)
		}
	}

	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.EventContent, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.eventContent(ctx, event)
}

func (s *EventService) GetEventBySlug(ctx context.Context, slug string) (*domain.EventContent, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.eventContent(ctx, event)
}

func (s *EventService) eventContent(ctx context.Context, event *domain.Event) (*domain.EventContent, error) {
	photos, err := s.photoRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return &domain.EventContent{Event: *event, Photos: photos}, nil
}

func (s *EventService) ListEvents(ctx context.Context, publishedOnly bool) ([]domain.Event, error) {
	return s.eventRepo.List(ctx, publishedOnly)
}

// UploadPhoto загружает фотографию съемки. Загрузка в хранилище идет первой;
// строка с URL появляется только после того, как хранилище подтвердило
// запись. Превью — best effort: без него галерея отдает оригинал.
func (s *EventService) UploadPhoto(ctx context.Context, eventID uuid.UUID, data []byte, fileName, contentType string) (*domain.Photo, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	ref, err := s.uploads.Upload(ctx, data, fileName, contentType, media.FolderEvents, false)
	if err != nil {
		return nil, err
	}

	previewURL, err := s.previews.Generate(ctx, ref.Key, data)
	if err != nil {
		log.Printf("[Events] Failed to generate preview for %s: %v", ref.Key, err)
		previewURL = ""
	}

	photo := &domain.Photo{
		ID:         uuid.New(),
		EventID:    eventID,
		URL:        ref.URL,
		Key:        ref.Key,
		PreviewURL: previewURL,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Строка не записалась — убираем только что загруженные объекты
		s.cleanup.Remove(ctx, ref.Key)
		if previewURL != "" {
			if removeErr := s.previews.Remove(ctx, ref.Key); removeErr != nil {
				log.Printf("[Events] Failed to remove preview after db error: %v", removeErr)
			}
		}
		return nil, err
	}

	return photo, nil
}

func (s *EventService) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cleanup.Remove(ctx, photo.Key)
	if err := s.previews.Remove(ctx, photo.Key); err != nil {
		log.Printf("[Events] Failed to remove preview for %s: %v", photo.Key, err)
	}

	return nil
}

func (s *EventService) UpdatePhotoPosition(ctx context.Context, id uuid.UUID, position int) error {
	return s.photoRepo.UpdatePosition(ctx, id, position)
}
