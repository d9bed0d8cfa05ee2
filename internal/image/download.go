package imagepkg

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxParallel = 4
	DefaultTimeout     = 10 * time.Second
)

// Fetcher downloads card images.
type Fetcher struct {
	client      *http.Client
	maxParallel int
	logger      *zap.Logger
}

func NewFetcher(timeout time.Duration, maxParallel int, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func (f *Fetcher) DownloadImage(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %s: status %d", url, resp.StatusCode)
	}
	return imaging.Decode(resp.Body)
}

// DownloadAll fetches every distinct url concurrently. Failed or empty urls
// are missing from the result; the map is keyed by url.
func (f *Fetcher) DownloadAll(ctx context.Context, urls []string) map[string]image.Image {
	var unique []string
	seen := map[string]bool{}
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}
	imgs := make([]image.Image, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxParallel)
	for i, u := range unique {
		i, u := i, u
		g.Go(func() error {
			img, err := f.DownloadImage(gctx, u)
			if err != nil {
				// best-effort: a missing card leaves a placeholder
				f.logger.Warn("card image download failed", zap.String("url", u), zap.Error(err))
				return nil
			}
			imgs[i] = img
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]image.Image, len(unique))
	for i, u := range unique {
		if imgs[i] != nil {
			results[u] = imgs[i]
		}
	}
	return results
}
