package util

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256Hex returns the lowercase hex SHA256 digest of the input.
func Sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return fmt.Sprintf("%x", sum)
}

// SanitizeFilename strips path separators and control characters from a
// client-supplied file name so it is safe to join onto a local directory.
// An empty result falls back to "file".
func SanitizeFilename(name string) string {
	// Drop any directory components the client may have sent.
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "file"
	}

	return sanitized
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
