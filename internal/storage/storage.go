// Package storage defines the Storage interface used for uploaded media.
//
// Backends register themselves from an init function in their own package
// and are selected by STORAGE_BACKEND:
//
//	func init() {
//	    storage.Register("local", func(cfg *config.Config) (storage.Storage, error) {
//	        return New(cfg.StorageLocalPath, cfg.StoragePublicURL)
//	    })
//	}
//
// The server imports each backend with a blank import.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"nhaf/internal/config"
)

// Storage stores uploaded files verbatim and resolves them to public URLs.
type Storage interface {
	// Upload stores a file and returns the storage result with path and checksum.
	Upload(ctx context.Context, path string, reader io.Reader, size int64) (*UploadResult, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the specified path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a URL the browser can load the file from. Backends that
	// sign URLs keep them valid for ttl.
	GetURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// UploadResult contains information about an uploaded file.
type UploadResult struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
}

// Checksum returns the hex SHA256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FactoryFunc builds a backend from configuration.
type FactoryFunc func(*config.Config) (Storage, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]FactoryFunc)
)

// Register registers a storage backend factory.
func Register(name string, factory FactoryFunc) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = factory
}

// NewStorage creates the backend named by cfg.StorageBackend.
func NewStorage(cfg *config.Config) (Storage, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if name == "" {
		name = "local"
	}

	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage backend: %s (registered: %s)", name, strings.Join(Backends(), ", "))
	}
	return factory(cfg)
}

// Backends lists the registered backend names.
func Backends() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CleanPath normalizes a storage key: forward slashes, no leading slash and
// no parent-directory segments.
func CleanPath(p string) (string, error) {
	p = strings.TrimLeft(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" {
		return "", fmt.Errorf("empty storage path")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." || seg == "" {
			return "", fmt.Errorf("invalid storage path: %q", p)
		}
	}
	return p, nil
}
