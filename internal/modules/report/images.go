package report

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
)

// imageFetcher downloads item thumbnails and registers them with the
// document. Failures are absorbed: a row with a dead image URL renders an
// empty cell, never a failed document.
type imageFetcher struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string][]byte
	kinds map[string]string
}

func newImageFetcher() *imageFetcher {
	return &imageFetcher{
		client: &http.Client{Timeout: 5 * time.Second},
		cache:  map[string][]byte{},
		kinds:  map[string]string{},
	}
}

// register ensures the image at url is registered with pdf and returns the
// registration name. ok is false when the image cannot be fetched or is not
// a renderable type.
func (f *imageFetcher) register(ctx context.Context, pdf *fpdf.Fpdf, url string) (string, bool) {
	data, kind, ok := f.fetch(ctx, url)
	if !ok {
		return "", false
	}
	if info := pdf.GetImageInfo(url); info == nil {
		pdf.RegisterImageOptionsReader(url, fpdf.ImageOptions{ImageType: kind}, strings.NewReader(string(data)))
		if pdf.Err() {
			// a corrupt image must not poison the document
			pdf.ClearError()
			return "", false
		}
	}
	return url, true
}

func (f *imageFetcher) fetch(ctx context.Context, url string) ([]byte, string, bool) {
	f.mu.Lock()
	if data, ok := f.cache[url]; ok {
		kind := f.kinds[url]
		f.mu.Unlock()
		return data, kind, data != nil
	}
	f.mu.Unlock()

	data, kind := f.download(ctx, url)

	f.mu.Lock()
	f.cache[url] = data
	f.kinds[url] = kind
	f.mu.Unlock()
	return data, kind, data != nil
}

func (f *imageFetcher) download(ctx context.Context, url string) ([]byte, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ""
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ""
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil || len(data) == 0 {
		return nil, ""
	}

	var kind string
	switch http.DetectContentType(data) {
	case "image/png":
		kind = "PNG"
	case "image/jpeg":
		kind = "JPG"
	case "image/gif":
		kind = "GIF"
	default:
		return nil, ""
	}
	return data, kind
}
