package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"nhaf/internal/config"
	"nhaf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaUpload(t *testing.T) {
	store := testutil.NewMemoryStorage()
	svc := NewMediaService(store, &config.Config{})
	svc.now = func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }

	media, err := svc.Upload(context.Background(), UploadInput{
		Kind:     MediaMemberPhoto,
		Filename: "Portrait.PNG",
		Content:  testutil.TinyPNG(t, 4, 4),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(media.Path, "members/2025/03/"), media.Path)
	assert.True(t, strings.HasSuffix(media.Path, ".png"), media.Path)
	assert.Equal(t, "image/png", media.ContentType)
	assert.Equal(t, "/media/"+media.Path, media.URL)
	assert.Len(t, media.Checksum, 64)
	assert.Equal(t, 1, store.Len())

	url, err := svc.URL(context.Background(), media.Path)
	require.NoError(t, err)
	assert.Equal(t, media.URL, url)
	url, err = svc.URL(context.Background(), "https://cdn.example/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/x.png", url)

	require.NoError(t, svc.Delete(context.Background(), media.Path))
	assert.Zero(t, store.Len())
}

func TestMediaUploadRejects(t *testing.T) {
	svc := NewMediaService(testutil.NewMemoryStorage(), &config.Config{ImageMaxUploadSizeMB: 1})
	ctx := context.Background()

	cases := map[string]UploadInput{
		"unknown kind":   {Kind: "docs", Filename: "a.png", Content: testutil.TinyPNG(t, 2, 2)},
		"empty":          {Kind: MediaLogo, Filename: "a.png"},
		"wrong ext":      {Kind: MediaLogo, Filename: "a.svg", Content: testutil.TinyPNG(t, 2, 2)},
		"not an image":   {Kind: MediaLogo, Filename: "a.png", Content: []byte("<html>hi</html>")},
		"over the limit": {Kind: MediaLogo, Filename: "a.png", Content: append(testutil.TinyPNG(t, 2, 2), make([]byte, 2<<20)...)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Upload(ctx, in)
			assertValidationError(t, err)
		})
	}

	assertValidationError(t, svc.Delete(ctx, "../etc/passwd"))
}
