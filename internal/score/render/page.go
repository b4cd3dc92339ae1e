package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// PageRendererConfig tunes the fetch/rasterize/store pipeline.
type PageRendererConfig struct {
	// MaxFetchBytes caps the PDF download size.
	MaxFetchBytes int64
	// FetchTimeout bounds the PDF download.
	FetchTimeout time.Duration
	// DPI used when rasterizing the first page.
	DPI float64
	// CacheTTL for rendered URLs; zero disables the cache even if one is set.
	CacheTTL time.Duration
}

// PageRenderer implements the real pipeline: download the PDF with bounded
// size and time, rasterize its first page to PNG and upload the result under
// a content-addressed key. Any stage error fails the whole render.
type PageRenderer struct {
	store      ObjectStore
	cache      Cache // may be nil
	httpClient *http.Client
	config     PageRendererConfig
	logger     *zap.Logger
}

// NewPageRenderer creates a page renderer backed by the given object store.
func NewPageRenderer(store ObjectStore, cache Cache, cfg PageRendererConfig, logger *zap.Logger) *PageRenderer {
	if cfg.MaxFetchBytes <= 0 {
		cfg.MaxFetchBytes = 32 << 20
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 150
	}

	return &PageRenderer{
		store: store,
		cache: cache,
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		config: cfg,
		logger: logger,
	}
}

// Render fetches the PDF, rasterizes page one and returns the stored image's
// public URL.
func (r *PageRenderer) Render(ctx context.Context, pdfURL, title string) (string, error) {
	digest := sha256.Sum256([]byte(pdfURL))
	key := hex.EncodeToString(digest[:])

	if url, ok := r.cachedURL(ctx, key); ok {
		return url, nil
	}

	data, err := r.fetch(ctx, pdfURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	imageData, err := rasterizeFirstPage(data, r.config.DPI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	objectName := fmt.Sprintf("pages/%s.png", key)
	if err := r.store.PutObject(ctx, objectName, bytes.NewReader(imageData), int64(len(imageData)), "image/png"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	url := r.store.PublicURL(objectName)

	r.storeCachedURL(ctx, key, url)

	r.logger.Info("score page rendered",
		zap.String("title", title),
		zap.String("object", objectName),
		zap.Int("image_bytes", len(imageData)),
	)

	return url, nil
}

func (r *PageRenderer) fetch(ctx context.Context, pdfURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pdfURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching pdf", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.config.MaxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	if int64(len(data)) > r.config.MaxFetchBytes {
		return nil, fmt.Errorf("pdf exceeds %d byte limit", r.config.MaxFetchBytes)
	}

	return data, nil
}

// rasterizeFirstPage renders page one only; later pages are never touched.
func rasterizeFirstPage(data []byte, dpi float64) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	img, err := doc.ImageDPI(0, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *PageRenderer) cachedURL(ctx context.Context, key string) (string, bool) {
	if r.cache == nil || r.config.CacheTTL <= 0 {
		return "", false
	}

	url, err := r.cache.Get(ctx, cacheKey(key))
	if err != nil {
		return "", false
	}
	return url, url != ""
}

// storeCachedURL is best-effort: cache failures never fail the render.
func (r *PageRenderer) storeCachedURL(ctx context.Context, key, url string) {
	if r.cache == nil || r.config.CacheTTL <= 0 {
		return
	}

	if err := r.cache.Set(ctx, cacheKey(key), url, r.config.CacheTTL); err != nil {
		r.logger.Warn("failed to cache rendered url", zap.Error(err))
	}
}

func cacheKey(digest string) string {
	return "scoresearch:render:" + digest
}
