package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandcamp-archiver/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		FeedBaseURL:          baseURL,
		FeedRetryCount:       3,
		ParsedFeedRetryDelay: time.Millisecond,
	}
}

func TestFetchFeed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Bandcamp", query.Get("bridge"))
		assert.Equal(t, "By band", query.Get("context"))
		assert.Equal(t, "changes", query.Get("type"))
		assert.Equal(t, "someband", query.Get("band"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"url": "https://someband.bandcamp.com/album/first", "title": "First"},
				{"url": "https://someband.bandcamp.com/track/second", "title": "Second"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	feed, err := client.FetchFeed(context.Background(), "someband")
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)

	assert.Equal(t, "https://someband.bandcamp.com/album/first", feed.Items[0].URL)
	assert.Equal(t, "First", feed.Items[0].Title)
	assert.Equal(t, "Second", feed.Items[1].Title)
}

func TestFetchFeedRetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	feed, err := client.FetchFeed(context.Background(), "flaky")
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.Equal(t, int64(3), calls.Load())
}

func TestFetchFeedExhaustsRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.FetchFeed(context.Background(), "down")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Equal(t, int64(3), calls.Load())
}

func TestFetchFeedMalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.FeedRetryCount = 1

	client := NewClient(cfg)

	_, err := client.FetchFeed(context.Background(), "broken")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode feed response")
}
