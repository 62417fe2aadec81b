package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotostudio/internal/storage"
)

func TestIssuePresignedUpload(t *testing.T) {
	gateway := newFakeGateway()
	s := newTestUploadService(gateway)

	presigned, err := s.IssuePresignedUpload(context.Background(), "clip.mp4", "video/mp4", FolderVideos)
	require.NoError(t, err)

	assert.Equal(t, "videos/1700000000000-a1b2c3d4-clip.mp4", presigned.Key)
	assert.NotEmpty(t, presigned.UploadURL)
	assert.Equal(t, 1, gateway.presignCalls)

	// PublicURL восстанавливается обратно в тот же ключ
	key, ok := storage.DeriveKeyFromURL(presigned.PublicURL, testBaseURL)
	require.True(t, ok)
	assert.Equal(t, presigned.Key, key)
}

func TestIssuePresignedUploadValidationBeforeSigning(t *testing.T) {
	gateway := newFakeGateway()
	s := newTestUploadService(gateway)

	_, err := s.IssuePresignedUpload(context.Background(), "doc.pdf", "application/pdf", FolderEvents)
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, gateway.presignCalls)
}

func TestIssuePresignedUploadStorageUnavailable(t *testing.T) {
	gateway := newFakeGateway()
	gateway.available = false
	s := newTestUploadService(gateway)

	_, err := s.IssuePresignedUpload(context.Background(), "clip.mp4", "video/mp4", FolderVideos)
	require.ErrorIs(t, err, storage.ErrStorageUnavailable)
	assert.Zero(t, gateway.presignCalls)
}
