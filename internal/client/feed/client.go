// Package feed fetches per-account Bandcamp change feeds through an
// rss-bridge instance that renders them as JSON.
package feed

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/logger"
	http_transport "bandcamp-archiver/internal/transport/http"
	"bandcamp-archiver/internal/utils"
)

// Client defines the interface for fetching account change feeds.
type Client interface {
	// FetchFeed retrieves and parses the change feed for the given account.
	FetchFeed(ctx context.Context, account string) (*Feed, error)
}

// ClientImpl implements the Client interface against an rss-bridge endpoint.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// Fixed query parameters of the Bandcamp bridge, per its "By band" context.
const (
	bridgeAction  = "display"
	bridgeName    = "Bandcamp"
	bridgeContext = "By band"
	bridgeType    = "changes"
	bridgeLimit   = "100"
	bridgeFormat  = "Json"
)

// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
var ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) Client {
	return &ClientImpl{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: http_transport.NewDefaultTransport(),
			Timeout:   http_transport.DefaultTimeout,
		},
	}
}

// FetchFeed retrieves and parses the change feed for the given account.
// The remote call is retried with the configured feed retry policy; the
// returned error carries every attempt's failure.
func (c *ClientImpl) FetchFeed(ctx context.Context, account string) (*Feed, error) {
	feedURL, err := c.buildFeedURL(account)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Fetching change feed for %q from %s", account, feedURL)

	policy := utils.RetryPolicy{
		Count: c.cfg.FeedRetryCount,
		Delay: c.cfg.ParsedFeedRetryDelay,
	}

	result, errs := utils.Retry(ctx, policy, func(ctx context.Context) (*Feed, error) {
		return c.fetchFeedOnce(ctx, feedURL)
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to fetch feed for %q: %w", account, utils.JoinRetryErrors(errs))
	}

	return result, nil
}

func (c *ClientImpl) buildFeedURL(account string) (string, error) {
	parsed, err := url.Parse(c.cfg.FeedBaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid feed base URL: %w", err)
	}

	query := url.Values{}
	query.Set("action", bridgeAction)
	query.Set("bridge", bridgeName)
	query.Set("context", bridgeContext)
	query.Set("type", bridgeType)
	query.Set("limit", bridgeLimit)
	query.Set("format", bridgeFormat)
	query.Set("band", account)

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func (c *ClientImpl) fetchFeedOnce(ctx context.Context, feedURL string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, resp.StatusCode)
	}

	var result Feed
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return &result, nil
}
