package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotostudio/internal/storage"
)

const testBaseURL = "https://cdn.example.com/media"

func newTestUploadService(gateway *fakeGateway) *UploadService {
	s := NewUploadService(gateway, testBaseURL)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	s.suffix = func() string { return "a1b2c3d4" }
	return s
}

func TestUpload(t *testing.T) {
	gateway := newFakeGateway()
	s := newTestUploadService(gateway)

	ref, err := s.Upload(context.Background(), []byte("jpeg bytes"), "sunset.jpg", "image/jpeg", FolderEvents, false)
	require.NoError(t, err)

	assert.Equal(t, "events/1700000000000-sunset.jpg", ref.Key)
	assert.Equal(t, testBaseURL+"/"+ref.Key, ref.URL)
	assert.Equal(t, 1, gateway.putCalls)
	assert.Equal(t, []string{ref.Key}, gateway.putKeys)
}

func TestUploadValidationBeforeStorage(t *testing.T) {
	gateway := newFakeGateway()
	s := newTestUploadService(gateway)

	_, err := s.Upload(context.Background(), []byte("%PDF"), "doc.pdf", "application/pdf", FolderAvatars, true)
	require.ErrorIs(t, err, ErrValidation)

	// Хранилище не должно быть тронуто при отклоненной загрузке
	assert.Zero(t, gateway.putCalls)
}

func TestUploadStorageUnavailable(t *testing.T) {
	gateway := newFakeGateway()
	gateway.available = false
	s := newTestUploadService(gateway)

	_, err := s.Upload(context.Background(), []byte("jpeg bytes"), "sunset.jpg", "image/jpeg", FolderEvents, false)
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)
	assert.Zero(t, gateway.putCalls)
}

func TestUploadWriteErrorSurfaced(t *testing.T) {
	gateway := newFakeGateway()
	gateway.putErr = errors.New("connection reset")
	s := newTestUploadService(gateway)

	_, err := s.Upload(context.Background(), []byte("jpeg bytes"), "sunset.jpg", "image/jpeg", FolderEvents, false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}
