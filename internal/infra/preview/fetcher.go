// Package preview downloads remote images into a local cache directory so
// clients can preview them before attaching them to a product.
package preview

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"souk/config"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/service"
	"souk/internal/util"

	"github.com/pkg/errors"
)

// fetcher caches downloads by the SHA256 of the source URL, so repeat
// requests for the same image are served from disk.
type fetcher struct {
	dir      string
	baseURL  string
	maxBytes int64
	client   *http.Client
}

// NewFetcher creates the preview download adapter with connect and total
// timeouts from config.
func NewFetcher(cfg *config.Config) service.PreviewFetcher {
	return &fetcher{
		dir:      cfg.Preview.Dir,
		baseURL:  strings.TrimRight(cfg.Preview.BaseURL, "/"),
		maxBytes: cfg.Preview.MaxBytes,
		client: &http.Client{
			Timeout: cfg.Preview.TotalTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.Preview.ConnectTimeout,
				}).DialContext,
			},
		},
	}
}

// Fetch validates the URL, serves a cached copy when one exists, and
// otherwise downloads the image subject to the size cap.
func (f *fetcher) Fetch(ctx context.Context, rawURL string) (*service.PreviewResult, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domainerrors.ErrPreviewURLInvalid
	}

	key := util.Sha256Hex(rawURL)
	if cached, ok := f.lookupCached(key); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domainerrors.ErrPreviewURLInvalid
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewUpstreamFetchError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, domainerrors.NewUpstreamFetchError(resp.StatusCode,
			fmt.Sprintf("upstream responded with status %d", resp.StatusCode))
	}

	mimeType := resp.Header.Get("Content-Type")
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	name := key + extensionFor(parsed.Path, mimeType)

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create preview directory")
	}
	path := filepath.Join(f.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create preview file")
	}

	written, err := io.Copy(out, io.LimitReader(resp.Body, f.maxBytes+1))
	closeErr := out.Close()
	if err != nil {
		_ = os.Remove(path)

		return nil, errors.Wrap(err, "download preview")
	}
	if closeErr != nil {
		_ = os.Remove(path)

		return nil, errors.Wrap(closeErr, "close preview file")
	}
	if written > f.maxBytes {
		_ = os.Remove(path)

		return nil, domainerrors.ErrPayloadTooLarge.WrapMessage(
			fmt.Sprintf("remote image exceeds the %s limit", util.FormatBytes(f.maxBytes)))
	}

	return &service.PreviewResult{
		LocalURL:  f.baseURL + "/" + name,
		MimeType:  mimeType,
		SizeBytes: written,
	}, nil
}

// lookupCached checks for a previous download of the same source URL. The
// extension is not known up front, so this matches on the key prefix.
func (f *fetcher) lookupCached(key string) (*service.PreviewResult, bool) {
	matches, err := filepath.Glob(filepath.Join(f.dir, key+"*"))
	if err != nil || len(matches) == 0 {
		return nil, false
	}

	info, err := os.Stat(matches[0])
	if err != nil {
		return nil, false
	}

	name := filepath.Base(matches[0])

	return &service.PreviewResult{
		LocalURL:  f.baseURL + "/" + name,
		MimeType:  mime.TypeByExtension(filepath.Ext(name)),
		SizeBytes: info.Size(),
		Cached:    true,
	}, true
}

// extensionFor picks a file extension from the URL path, falling back to the
// response content type, then to .bin.
func extensionFor(urlPath, mimeType string) string {
	if ext := filepath.Ext(urlPath); ext != "" && len(ext) <= 6 {
		return strings.ToLower(ext)
	}

	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ".bin"
}
