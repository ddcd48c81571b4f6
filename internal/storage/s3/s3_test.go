package s3

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBucketAndRegion(t *testing.T) {
	_, err := New(context.Background(), Options{Region: "us-east-1"})
	assert.ErrorContains(t, err, "bucket")

	_, err = New(context.Background(), Options{Bucket: "media"})
	assert.ErrorContains(t, err, "region")
}

func TestGetURLPrefersPublicURL(t *testing.T) {
	s, err := New(context.Background(), Options{
		Bucket:          "media",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		PublicURL:       "https://cdn.example.org/",
	})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "/members/a.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.org/members/a.png", url)
}

func TestGetURLPresignsAgainstEndpoint(t *testing.T) {
	s, err := New(context.Background(), Options{
		Bucket:          "media",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "members/a.png", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/media/members/a.png?"), url)
	assert.Contains(t, url, "X-Amz-Expires=600")
}
