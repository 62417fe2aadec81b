package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xfrr/goffmpeg/transcoder"

	"fotostudio/internal/domain"
	"fotostudio/internal/media"
	"fotostudio/internal/repository"
	"fotostudio/internal/storage"
)

// VideoService управляет роликами. При серверной загрузке из файла
// извлекаются длительность и постер; обе операции best effort — ролик
// сохраняется и без них.
type VideoService struct {
	videoRepo    *repository.VideoRepository
	uploads      *media.UploadService
	cleanup      *media.Coordinator
	probeEnabled bool
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	uploads *media.UploadService,
	cleanup *media.Coordinator,
) *VideoService {
	// Проверяем наличие ffmpeg; без него обходимся без постеров
	probeEnabled := true
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Printf("[Video] ffmpeg not found, poster extraction is disabled: %v", err)
		probeEnabled = false
	}

	return &VideoService{
		videoRepo:    videoRepo,
		uploads:      uploads,
		cleanup:      cleanup,
		probeEnabled: probeEnabled,
	}
}

// Upload принимает видео через сервер. Тело уже на руках, поэтому сразу
// пробуем вытащить постер и длительность.
func (s *VideoService) Upload(ctx context.Context, data []byte, fileName, contentType, title string) (*domain.Video, error) {
	ref, err := s.uploads.Upload(ctx, data, fileName, contentType, media.FolderVideos, false)
	if err != nil {
		return nil, err
	}

	video := &domain.Video{
		ID:    uuid.New(),
		Title: title,
		URL:   ref.URL,
		Key:   ref.Key,
	}

	if s.probeEnabled {
		duration, poster, err := s.probe(ctx, data)
		if err != nil {
			log.Printf("[Video] Failed to probe video %s: %v", ref.Key, err)
		} else {
			video.DurationSec = duration
			if posterRef, err := s.uploads.Upload(ctx, poster, posterName(fileName), "image/jpeg", media.FolderBanners, false); err != nil {
				log.Printf("[Video] Failed to store poster for %s: %v", ref.Key, err)
			} else {
				video.PosterURL = posterRef.URL
				video.PosterKey = posterRef.Key
			}
		}
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		s.cleanup.Remove(ctx, video.Key)
		if video.PosterKey != "" {
			s.cleanup.Remove(ctx, video.PosterKey)
		}
		return nil, err
	}

	return video, nil
}

// Register сохраняет ролик, загруженный браузером напрямую по подписанной
// ссылке. Тела на сервере нет, постер не извлекается.
func (s *VideoService) Register(ctx context.Context, title, url, key string) (*domain.Video, error) {
	if url == "" && key == "" {
		return nil, fmt.Errorf("%w: url or key is required", media.ErrValidation)
	}

	video := &domain.Video{
		ID:    uuid.New(),
		Title: title,
		URL:   url,
		Key:   key,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, id uuid.UUID) error {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return err
	}

	ref := video.Key
	if ref == "" {
		ref = video.URL
	}
	s.cleanup.Remove(ctx, ref)
	if video.PosterKey != "" {
		s.cleanup.Remove(ctx, video.PosterKey)
	}

	return nil
}

func (s *VideoService) List(ctx context.Context) ([]domain.Video, error) {
	return s.videoRepo.List(ctx)
}

// probe извлекает длительность и кадр для постера из видео.
func (s *VideoService) probe(ctx context.Context, data []byte) (float64, []byte, error) {
	tmpPath, err := os.MkdirTemp("", "video-probe-")
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpPath)

	inputPath := filepath.Join(tmpPath, "input.mp4")
	if err := os.WriteFile(inputPath, data, 0644); err != nil {
		return 0, nil, fmt.Errorf("failed to write video data: %w", err)
	}

	rawDuration, err := getVideoDuration(inputPath)
	if err != nil {
		return 0, nil, err
	}
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to parse duration %q: %w", rawDuration, err)
	}

	posterPath := filepath.Join(tmpPath, "poster.jpg")

	trans := new(transcoder.Transcoder)
	if err := trans.Initialize(inputPath, posterPath); err != nil {
		return 0, nil, fmt.Errorf("failed to initialize transcoder: %w", err)
	}

	trans.MediaFile().SetSeekTime(calculatePosterTime(duration))
	trans.MediaFile().SetVframes(1)
	trans.MediaFile().SetSkipAudio(true)

	done := trans.Run(false)
	select {
	case err := <-done:
		if err != nil {
			return 0, nil, fmt.Errorf("failed to extract poster frame: %w", err)
		}
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}

	poster, err := os.ReadFile(posterPath)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read poster frame: %w", err)
	}

	return duration, poster, nil
}

// getVideoDuration получает длительность видео через ffprobe
func getVideoDuration(videoPath string) (string, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get duration: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// calculatePosterTime берет кадр на 10% от начала, но не раньше первой
// секунды
func calculatePosterTime(duration float64) string {
	if duration <= 10 {
		return "00:00:01"
	}

	posterSeconds := duration * 0.1
	hours := int(posterSeconds) / 3600
	minutes := (int(posterSeconds) % 3600) / 60
	seconds := int(posterSeconds) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func posterName(fileName string) string {
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-poster.jpg"
}
