package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStorageProvider(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want StorageProvider
	}{
		{name: "s3 virtual-hosted", url: "https://mybucket.s3.amazonaws.com/x.png", want: StorageS3},
		{name: "s3 regional", url: "https://mybucket.s3.ap-southeast-1.amazonaws.com/x.png", want: StorageS3},
		{name: "gcp", url: "https://storage.googleapis.com/x", want: StorageGCP},
		{name: "cloudflare images", url: "https://imagedelivery.net/acct/img/public", want: StorageCloudflare},
		{name: "cloudflare r2", url: "https://acct.r2.cloudflarestorage.com/bucket/x", want: StorageCloudflare},
		{name: "absolute path", url: "/local/path.png", want: StorageLocal},
		{name: "file scheme", url: "file:///tmp/x.png", want: StorageLocal},
		{name: "localhost", url: "http://localhost:8080/x.png", want: StorageLocal},
		{name: "unmatched host", url: "https://cdn.example.com/x.png", want: StorageLocal},
		{name: "empty", url: "", want: StorageLocal},
		{name: "case insensitive", url: "HTTPS://MYBUCKET.S3.AMAZONAWS.COM/X.PNG", want: StorageS3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectStorageProvider(tt.url))
		})
	}
}

func TestProductMedia_SetURL_RederivesProvider(t *testing.T) {
	media := &ProductMedia{}

	media.SetURL("https://mybucket.s3.amazonaws.com/x.png")
	assert.Equal(t, StorageS3, media.Provider)

	// Provider follows every URL change, not just the first one.
	media.SetURL("/uploads/x.png")
	assert.Equal(t, StorageLocal, media.Provider)

	media.SetURL("https://storage.googleapis.com/bucket/x.png")
	assert.Equal(t, StorageGCP, media.Provider)
}

func TestParseStorageProvider(t *testing.T) {
	p, ok := ParseStorageProvider("s3")
	assert.True(t, ok)
	assert.Equal(t, StorageS3, p)

	p, ok = ParseStorageProvider(" cloudflare ")
	assert.True(t, ok)
	assert.Equal(t, StorageCloudflare, p)

	// Unknown input falls back to LOCAL, and the flag says so.
	p, ok = ParseStorageProvider("azure")
	assert.False(t, ok)
	assert.Equal(t, StorageLocal, p)
}

func TestParseValidationStatus(t *testing.T) {
	s, ok := ParseValidationStatus("validated")
	assert.True(t, ok)
	assert.Equal(t, ValidationValidated, s)

	s, ok = ParseValidationStatus("bogus")
	assert.False(t, ok)
	assert.Equal(t, ValidationPending, s)
}

func TestParseMediaKind(t *testing.T) {
	k, ok := ParseMediaKind("VIDEO")
	assert.True(t, ok)
	assert.Equal(t, MediaVideo, k)

	k, ok = ParseMediaKind("gif")
	assert.False(t, ok)
	assert.Equal(t, MediaImage, k)
}
