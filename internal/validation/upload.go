package validation

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// MaxImageBytes is the upload ceiling for staff images.
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
}

// ValidateImage checks extension, size and sniffed content of an uploaded
// image held in data. It returns the detected content type.
func ValidateImage(filename string, data []byte, maxBytes int64) (string, error) {
	size := int64(len(data))
	if maxBytes <= 0 {
		maxBytes = MaxImageBytes
	}
	if size <= 0 {
		return "", errors.New("file is empty")
	}
	if size > maxBytes {
		return "", fmt.Errorf("file exceeds %d MB limit", maxBytes>>20)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed, ok := allowedImageTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}

	detected := http.DetectContentType(data)
	if !contains(allowed, detected) {
		return "", fmt.Errorf("file content %s does not match extension %s", detected, ext)
	}

	if detected == "image/webp" {
		if _, err := webp.DecodeConfig(bytes.NewReader(data)); err != nil {
			return "", errors.New("invalid webp image")
		}
	}
	return detected, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
