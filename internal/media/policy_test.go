package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		folder      string
		contentType string
		sizeBytes   int64
		anonymous   bool
		wantErr     bool
	}{
		{
			name:        "jpeg into events",
			folder:      FolderEvents,
			contentType: "image/jpeg",
			sizeBytes:   1 << 20,
		},
		{
			name:        "pdf into avatars rejected",
			folder:      FolderAvatars,
			contentType: "application/pdf",
			sizeBytes:   1024,
			wantErr:     true,
		},
		{
			name:        "unknown folder rejected",
			folder:      "documents",
			contentType: "image/jpeg",
			sizeBytes:   1024,
			wantErr:     true,
		},
		{
			name:        "video within admin limit",
			folder:      FolderVideos,
			contentType: "video/mp4",
			sizeBytes:   400 * 1024 * 1024,
		},
		{
			name:        "video over admin limit",
			folder:      FolderVideos,
			contentType: "video/mp4",
			sizeBytes:   501 * 1024 * 1024,
			wantErr:     true,
		},
		{
			name:        "anonymous video over proxy limit",
			folder:      FolderVideos,
			contentType: "video/mp4",
			sizeBytes:   200 * 1024 * 1024,
			anonymous:   true,
			wantErr:     true,
		},
		{
			name:        "anonymous video within proxy limit",
			folder:      FolderVideos,
			contentType: "video/mp4",
			sizeBytes:   50 * 1024 * 1024,
			anonymous:   true,
		},
		{
			name:        "image into videos rejected",
			folder:      FolderVideos,
			contentType: "image/jpeg",
			sizeBytes:   1024,
			wantErr:     true,
		},
		{
			name:        "huge image allowed",
			folder:      FolderGallery,
			contentType: "image/png",
			sizeBytes:   2 << 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpload(tt.folder, tt.contentType, tt.sizeBytes, tt.anonymous)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
