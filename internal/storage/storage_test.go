package storage_test

import (
	"context"
	"io"
	"testing"
	"time"

	"nhaf/internal/config"
	"nhaf/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopStorage struct{}

func (nopStorage) Upload(_ context.Context, p string, _ io.Reader, _ int64) (*storage.UploadResult, error) {
	return &storage.UploadResult{Path: p}, nil
}

func (nopStorage) Delete(context.Context, string) error {
	return nil
}

func (nopStorage) Exists(context.Context, string) (bool, error) {
	return false, nil
}

func (nopStorage) GetURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}

func TestNewStorageDispatchesByName(t *testing.T) {
	storage.Register("nop", func(*config.Config) (storage.Storage, error) {
		return nopStorage{}, nil
	})

	s, err := storage.NewStorage(&config.Config{StorageBackend: " NOP "})
	require.NoError(t, err)
	assert.IsType(t, nopStorage{}, s)
	assert.Contains(t, storage.Backends(), "nop")

	_, err = storage.NewStorage(&config.Config{StorageBackend: "tape"})
	assert.ErrorContains(t, err, "unsupported storage backend: tape")
}

func TestCleanPath(t *testing.T) {
	for in, want := range map[string]string{
		"members/a.png":  "members/a.png",
		"/members/a.png": "members/a.png",
		`members\a.png`:  "members/a.png",
		"site/logo.webp": "site/logo.webp",
	} {
		got, err := storage.CleanPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "/", "../etc/passwd", "a/../../b", "a//b", "./a"} {
		_, err := storage.CleanPath(bad)
		assert.Error(t, err, bad)
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", storage.Checksum(nil))
}
