// Package http provides the HTTP round-tripper stack shared by the feed and
// Bandcamp clients: debug request/response logging and User-Agent injection.
package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"bandcamp-archiver/internal/logger"
	"bandcamp-archiver/internal/utils"
)

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// It mimics a common browser User-Agent to avoid being blocked by servers.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll

	// defaultMaxLogLength is the maximum size of a dumped request or response in the debug log.
	defaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
)

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// LogTransport is an http.RoundTripper that dumps requests and responses to
// the debug log. It wraps another round tripper and is a no-op unless the
// logger runs at debug level.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// NewLogTransport creates a LogTransport wrapping next.
// If maxLogLength is 0, a 1 MB limit is applied.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction, logging the request and
// response when debug logging is enabled.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)
	elapsed := utils.StartTimer()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.String(), err)

		return nil, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, elapsed(), requestDump, t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequest(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// Binary bodies (artwork, audio) are not worth dumping.
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}

// UserAgentInjector is an http.RoundTripper that sets a User-Agent header on
// requests that lack one.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgent is the User-Agent string to inject.
	userAgent string
}

// NewUserAgentInjector creates a UserAgentInjector wrapping next.
// An empty userAgent falls back to DefaultUserAgent.
func NewUserAgentInjector(next http.RoundTripper, userAgent string) http.RoundTripper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &UserAgentInjector{
		next:      next,
		userAgent: userAgent,
	}
}

// RoundTrip executes a single HTTP transaction, injecting the User-Agent
// header if it is missing.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, t.userAgent)
	}

	return t.next.RoundTrip(req)
}

// NewDefaultTransport assembles the standard round-tripper stack:
// User-Agent injection over debug logging over http.DefaultTransport.
func NewDefaultTransport() http.RoundTripper {
	return NewUserAgentInjector(
		NewLogTransport(http.DefaultTransport, 0),
		DefaultUserAgent,
	)
}
