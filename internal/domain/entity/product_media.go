package entity

import (
	"strings"
	"time"
)

// StorageProvider names where a media URL is hosted. It is derived from the
// URL, never supplied independently of it.
type StorageProvider string

const (
	StorageLocal      StorageProvider = "LOCAL"
	StorageS3         StorageProvider = "S3"
	StorageCloudflare StorageProvider = "CLOUDFLARE"
	StorageGCP        StorageProvider = "GCP"
)

// String returns the string representation of the StorageProvider.
func (p StorageProvider) String() string {
	return string(p)
}

// IsValid checks if the StorageProvider is a valid value.
func (p StorageProvider) IsValid() bool {
	switch p {
	case StorageLocal, StorageS3, StorageCloudflare, StorageGCP:
		return true
	default:
		return false
	}
}

// ParseStorageProvider coerces a request string into a StorageProvider. The
// ok flag is false when the input was unknown and LOCAL was substituted.
func ParseStorageProvider(s string) (StorageProvider, bool) {
	p := StorageProvider(normalizeEnumToken(s))
	if p.IsValid() {
		return p, true
	}

	return StorageLocal, false
}

// DetectStorageProvider infers the hosting provider from a media URL by
// case-insensitive substring matching, in rule order: S3 patterns, then GCP,
// then Cloudflare, then local path forms. Anything unmatched is LOCAL.
// The function is pure and idempotent.
func DetectStorageProvider(url string) StorageProvider {
	if url == "" {
		return StorageLocal
	}
	lower := strings.ToLower(url)

	switch {
	case strings.Contains(lower, "s3.amazonaws.com") || strings.Contains(lower, ".s3."):
		return StorageS3
	case strings.Contains(lower, "storage.googleapis.com"):
		return StorageGCP
	case strings.Contains(lower, "imagedelivery.net") || strings.Contains(lower, "r2.cloudflarestorage.com"):
		return StorageCloudflare
	case strings.HasPrefix(lower, "/") || strings.HasPrefix(lower, "file:") || strings.Contains(lower, "localhost"):
		return StorageLocal
	default:
		return StorageLocal
	}
}

// ValidationStatus tracks whether a media row has passed content validation.
type ValidationStatus string

const (
	ValidationPending   ValidationStatus = "PENDING"
	ValidationValidated ValidationStatus = "VALIDATED"
	ValidationRejected  ValidationStatus = "REJECTED"
)

// String returns the string representation of the ValidationStatus.
func (s ValidationStatus) String() string {
	return string(s)
}

// IsValid checks if the ValidationStatus is a valid value.
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationPending, ValidationValidated, ValidationRejected:
		return true
	default:
		return false
	}
}

// ParseValidationStatus coerces a request string into a ValidationStatus.
// The ok flag is false when the input was unknown and PENDING was
// substituted.
func ParseValidationStatus(s string) (ValidationStatus, bool) {
	status := ValidationStatus(normalizeEnumToken(s))
	if status.IsValid() {
		return status, true
	}

	return ValidationPending, false
}

// MediaKind discriminates the unified media entity.
type MediaKind string

const (
	MediaImage MediaKind = "IMAGE"
	MediaVideo MediaKind = "VIDEO"
)

// String returns the string representation of the MediaKind.
func (k MediaKind) String() string {
	return string(k)
}

// IsValid checks if the MediaKind is a valid value.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaImage, MediaVideo:
		return true
	default:
		return false
	}
}

// ParseMediaKind coerces a request string into a MediaKind. The ok flag is
// false when the input was unknown and IMAGE was substituted.
func ParseMediaKind(s string) (MediaKind, bool) {
	k := MediaKind(normalizeEnumToken(s))
	if k.IsValid() {
		return k, true
	}

	return MediaImage, false
}

// ProductMedia is an image or video attached to a product. The video-only
// fields (duration, resolution, validation error) stay zero for images.
type ProductMedia struct {
	ID              int64
	ProductID       int64
	Kind            MediaKind
	URL             string
	Description     string
	Provider        StorageProvider
	MimeType        string
	Width           int
	Height          int
	SizeKB          int
	DurationSeconds int
	Resolution      string
	Status          ValidationStatus
	ValidationError string
	UploadedAt      time.Time
	UpdatedAt       time.Time
}

// SetURL stores the media URL and re-derives the storage provider from it.
// The provider field always reflects the current URL.
func (m *ProductMedia) SetURL(url string) {
	m.URL = url
	m.Provider = DetectStorageProvider(url)
}
