package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"nhaf/internal/config"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/storage"
	"nhaf/internal/validation"

	"github.com/google/uuid"
)

// MediaKind is the folder an upload is filed under.
type MediaKind string

const (
	MediaMemberPhoto MediaKind = "members"
	MediaVolunteer   MediaKind = "volunteers"
	MediaLogo        MediaKind = "site"
	MediaWatermark   MediaKind = "team_page"
)

// Valid reports whether k is a known upload folder.
func (k MediaKind) Valid() bool {
	switch k {
	case MediaMemberPhoto, MediaVolunteer, MediaLogo, MediaWatermark:
		return true
	}
	return false
}

// mediaURLTTL is how long signed URLs stay valid for backends that sign.
const mediaURLTTL = 24 * time.Hour

// MediaService validates images and stores them verbatim.
type MediaService struct {
	store    storage.Storage
	maxBytes int64
	now      func() time.Time
}

// NewMediaService returns a MediaService writing to store.
func NewMediaService(store storage.Storage, cfg *config.Config) *MediaService {
	maxBytes := int64(validation.MaxImageBytes)
	if cfg != nil && cfg.ImageMaxUploadSizeMB > 0 {
		maxBytes = int64(cfg.ImageMaxUploadSizeMB) << 20
	}
	return &MediaService{store: store, maxBytes: maxBytes, now: time.Now}
}

// UploadInput is one uploaded file.
type UploadInput struct {
	Kind     MediaKind
	Filename string
	Content  []byte
}

// Media describes a stored upload.
type Media struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum"`
}

// Upload validates and stores an image under a dated, unique path.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*Media, error) {
	if !in.Kind.Valid() {
		return nil, models.NewValidationError("Unknown upload kind")
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	contentType, err := validation.ValidateImage(in.Filename, in.Content, s.maxBytes)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	ext := strings.ToLower(path.Ext(in.Filename))
	key := fmt.Sprintf("%s/%s/%s%s", in.Kind, s.now().UTC().Format("2006/01"), uuid.NewString(), ext)
	res, err := s.store.Upload(ctx, key, bytes.NewReader(in.Content), int64(len(in.Content)))
	if err != nil {
		return nil, models.NewUnavailableError("Could not store the file", err)
	}
	url, err := s.store.GetURL(ctx, res.Path, mediaURLTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.Logger.InfoContext(ctx, "media uploaded",
		slog.String("path", res.Path),
		slog.Int64("size", res.Size),
		slog.String("content_type", contentType),
	)
	return &Media{
		Path:        res.Path,
		URL:         url,
		ContentType: contentType,
		Size:        res.Size,
		Checksum:    res.Checksum,
	}, nil
}

// URL resolves a stored path. Blank paths and absolute URLs pass through.
func (s *MediaService) URL(ctx context.Context, p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p, nil
	}
	return s.store.GetURL(ctx, p, mediaURLTTL)
}

// Delete removes a stored file.
func (s *MediaService) Delete(ctx context.Context, p string) error {
	if p == "" {
		return models.NewValidationError("path is required")
	}
	if _, err := storage.CleanPath(p); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := s.store.Delete(ctx, p); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
