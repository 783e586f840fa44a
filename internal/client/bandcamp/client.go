// Package bandcamp talks plain HTTP to Bandcamp pages: auxiliary track-page
// fetches for artwork identifiers and streaming downloads of artwork and
// audio files.
package bandcamp

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"bandcamp-archiver/internal/logger"
	http_transport "bandcamp-archiver/internal/transport/http"
)

// Client defines the interface for plain-HTTP interactions with Bandcamp.
type Client interface {
	// FetchTrackArtID retrieves the artwork identifier from a track's own page.
	FetchTrackArtID(ctx context.Context, trackURL string) (int64, error)
	// DownloadFromURL streams the content behind the given URL.
	// The second return value is the Content-Length, or -1 when unknown.
	DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// artIDCache caches artwork identifiers by track URL. Feed items for an
	// album and its singles revisit the same track pages within one run.
	artIDCache *lru.Cache[string, int64]
}

// artIDCacheSize bounds the per-run art-id cache. A change feed caps out at
// 100 items per account, so this comfortably covers a whole run.
const artIDCacheSize = 2048

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrMissingArtID indicates a track page whose pagedata carries no artwork identifier.
	ErrMissingArtID = errors.New("track page has no artwork identifier")
)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient() (Client, error) {
	artIDCache, err := lru.New[string, int64](artIDCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create art-id cache: %w", err)
	}

	return &ClientImpl{
		httpClient: &http.Client{
			Transport: http_transport.NewDefaultTransport(),
			Timeout:   http_transport.DefaultTimeout,
		},
		artIDCache: artIDCache,
	}, nil
}

// FetchTrackArtID retrieves the artwork identifier from a track's own page.
// Results are cached by track URL for the lifetime of the client.
func (c *ClientImpl) FetchTrackArtID(ctx context.Context, trackURL string) (int64, error) {
	if artID, ok := c.artIDCache.Get(trackURL); ok {
		logger.Debugf(ctx, "Art ID for %s served from cache", trackURL)

		return artID, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create track page request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("track page request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read track page: %w", err)
	}

	blob, err := ExtractPageData(string(body))
	if err != nil {
		return 0, err
	}

	var pageData TrackPageData
	if err = json.Unmarshal(blob, &pageData); err != nil {
		return 0, fmt.Errorf("failed to decode pagedata blob: %w", err)
	}

	if pageData.ArtID == nil {
		return 0, ErrMissingArtID
	}

	c.artIDCache.Add(trackURL, *pageData.ArtID)

	return *pageData.ArtID, nil
}

// DownloadFromURL streams the content behind the given URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("download request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()

		return nil, 0, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}
