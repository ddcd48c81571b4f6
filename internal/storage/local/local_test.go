package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nhaf/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := New(t.TempDir(), "https://cdn.example.org/media/")
	require.NoError(t, err)
	return s
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := New(dir, "")
	require.NoError(t, err)
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestUploadExistsURLDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	res, err := s.Upload(ctx, "/members/2024/photo.png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)
	assert.Equal(t, "members/2024/photo.png", res.Path)
	assert.Equal(t, int64(9), res.Size)
	assert.Equal(t, storage.Checksum([]byte("png-bytes")), res.Checksum)

	ok, err := s.Exists(ctx, res.Path)
	require.NoError(t, err)
	assert.True(t, ok)

	url, err := s.GetURL(ctx, res.Path, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/media/members/2024/photo.png", url)

	require.NoError(t, s.Delete(ctx, res.Path))
	ok, err = s.Exists(ctx, res.Path)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = os.Stat(filepath.Join(s.BasePath(), "members"))
	assert.True(t, os.IsNotExist(err), "empty parents are pruned")
	_, err = os.Stat(s.BasePath())
	assert.NoError(t, err, "base directory survives")
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "nothing/here.png"))
}

func TestGetURLMissingFile(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.GetURL(context.Background(), "missing.png", 0)
	assert.ErrorContains(t, err, "file not found")
}

func TestRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.Upload(context.Background(), "../escape.png", strings.NewReader("x"), 1)
	assert.Error(t, err)
}
