package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAgentInjectorSetsHeader(t *testing.T) {
	t.Parallel()

	var receivedUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewUserAgentInjector(http.DefaultTransport, "test-agent/1.0")}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "test-agent/1.0", receivedUserAgent)
}

func TestUserAgentInjectorKeepsExistingHeader(t *testing.T) {
	t.Parallel()

	var receivedUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewUserAgentInjector(http.DefaultTransport, "injected/1.0")}

	req, err := http.NewRequest(http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "explicit/2.0")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "explicit/2.0", receivedUserAgent)
}

func TestUserAgentInjectorDefaultsAgent(t *testing.T) {
	t.Parallel()

	injector, ok := NewUserAgentInjector(http.DefaultTransport, "").(*UserAgentInjector)
	require.True(t, ok)
	assert.Equal(t, DefaultUserAgent, injector.userAgent)
}

func TestLogTransportPassesThrough(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: NewLogTransport(http.DefaultTransport, 0)}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogTransportNilRequest(t *testing.T) {
	t.Parallel()

	transport := NewLogTransport(http.DefaultTransport, 0)

	_, err := transport.RoundTrip(nil)
	assert.ErrorIs(t, err, ErrNilRequest)
}
