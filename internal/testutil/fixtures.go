package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"
	"time"

	"nhaf/internal/storage"
)

// TinyPNG returns an in-memory PNG byte slice with the requested dimensions.
func TinyPNG(t interface {
	Helper()
	Fatalf(string, ...any)
}, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// MemoryStorage is an in-memory storage.Storage for tests.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	BaseURL string
}

// NewMemoryStorage returns an empty MemoryStorage serving under /media.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte), BaseURL: "/media"}
}

// Upload stores the reader's contents under path.
func (s *MemoryStorage) Upload(_ context.Context, path string, r io.Reader, _ int64) (*storage.UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.objects[path] = data
	s.mu.Unlock()
	return &storage.UploadResult{Path: path, Size: int64(len(data)), Checksum: storage.Checksum(data)}, nil
}

// Delete removes path; a missing path is not an error.
func (s *MemoryStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	delete(s.objects, path)
	s.mu.Unlock()
	return nil
}

// Exists reports whether path was uploaded.
func (s *MemoryStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok, nil
}

// GetURL returns BaseURL joined with path.
func (s *MemoryStorage) GetURL(ctx context.Context, path string, _ time.Duration) (string, error) {
	ok, _ := s.Exists(ctx, path)
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return s.BaseURL + "/" + path, nil
}

// Len returns the number of stored objects.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
