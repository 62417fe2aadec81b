package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name     string
		folder   string
		fileName string
		suffix   string
		want     string
	}{
		{
			name:     "simple file",
			folder:   "events",
			fileName: "sunset.jpg",
			want:     "events/1700000000000-sunset.jpg",
		},
		{
			name:     "with suffix",
			folder:   "videos",
			fileName: "clip.mp4",
			suffix:   "a1b2c3d4",
			want:     "videos/1700000000000-a1b2c3d4-clip.mp4",
		},
		{
			name:     "path components stripped",
			folder:   "events",
			fileName: "../../etc/passwd",
			want:     "events/1700000000000-passwd",
		},
		{
			name:     "empty name falls back",
			folder:   "events",
			fileName: "   ",
			want:     "events/1700000000000-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveKey(tt.folder, tt.fileName, now, tt.suffix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveKeyIsPure(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	first := DeriveKey("events", "sunset.jpg", now, "abc")
	second := DeriveKey("events", "sunset.jpg", now, "abc")
	assert.Equal(t, first, second)
}

func TestDeriveKeyUniqueness(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	// Разные миллисекунды дают разные ключи
	assert.NotEqual(t,
		DeriveKey("events", "sunset.jpg", now, ""),
		DeriveKey("events", "sunset.jpg", now.Add(time.Millisecond), ""))

	// Разные суффиксы дают разные ключи в одну миллисекунду
	assert.NotEqual(t,
		DeriveKey("events", "sunset.jpg", now, RandomSuffix()),
		DeriveKey("events", "sunset.jpg", now, RandomSuffix()))
}

func TestPublicURLRoundTrip(t *testing.T) {
	baseURL := "https://cdn.example.com/media"
	key := "events/1700000000000-sunset.jpg"

	url := PublicURL(baseURL, key)
	assert.Equal(t, "https://cdn.example.com/media/events/1700000000000-sunset.jpg", url)

	got, ok := DeriveKeyFromURL(url, baseURL)
	require.True(t, ok)
	assert.Equal(t, key, got)
}

func TestDeriveKeyFromURL(t *testing.T) {
	baseURL := "https://cdn.example.com/media"

	tests := []struct {
		name    string
		rawURL  string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "valid url",
			rawURL:  "https://cdn.example.com/media/events/1-a.jpg",
			wantKey: "events/1-a.jpg",
			wantOK:  true,
		},
		{
			name:   "foreign host",
			rawURL: "https://evil.example.org/media/events/1-a.jpg",
			wantOK: false,
		},
		{
			name:   "prefix without separator",
			rawURL: "https://cdn.example.com/mediafiles/events/1-a.jpg",
			wantOK: false,
		},
		{
			name:   "base url itself",
			rawURL: "https://cdn.example.com/media",
			wantOK: false,
		},
		{
			name:   "base with trailing slash only",
			rawURL: "https://cdn.example.com/media/",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := DeriveKeyFromURL(tt.rawURL, baseURL)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestDeriveKeyFromURLEmptyBase(t *testing.T) {
	_, ok := DeriveKeyFromURL("https://cdn.example.com/media/events/1-a.jpg", "")
	assert.False(t, ok)
}
