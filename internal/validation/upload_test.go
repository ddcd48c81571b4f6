package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte("\xFF\xD8\xFF\xE0"), bytes.Repeat([]byte{0}, 32)...)
	gifBytes  = append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 32)...)
	// 1x1 lossless webp.
	webpBytes = []byte("RIFF\x12\x00\x00\x00WEBPVP8L\x05\x00\x00\x00\x2f\x00\x00\x00\x00\x00")
	// VP8L chunk without a bitstream.
	brokenWebp = []byte("RIFF\x0c\x00\x00\x00WEBPVP8L\x00\x00\x00\x00")
)

func TestValidateImageAcceptsAllowedTypes(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"png", "logo.png", pngBytes, "image/png"},
		{"jpeg upper ext", "photo.JPG", jpegBytes, "image/jpeg"},
		{"jpeg long ext", "photo.jpeg", jpegBytes, "image/jpeg"},
		{"gif", "a.gif", gifBytes, "image/gif"},
		{"webp", "a.webp", webpBytes, "image/webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateImage(tt.file, tt.data, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateImageRejects(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		max  int64
	}{
		{"empty", "a.png", nil, 0},
		{"too large", "a.png", pngBytes, 8},
		{"bad extension", "a.svg", pngBytes, 0},
		{"content mismatch", "a.png", jpegBytes, 0},
		{"html disguised", "a.jpg", []byte("<html><script></script></html>"), 0},
		{"broken webp", "a.webp", brokenWebp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateImage(tt.file, tt.data, tt.max)
			assert.Error(t, err)
		})
	}
}
