package renderer

//go:generate $MOCKGEN -source=renderer.go -destination=mocks/renderer_mock.go

import (
	"context"
	"encoding/json"
	"errors"
)

// DownloadFormat names an entry in a release's download-format selector.
type DownloadFormat string

// FormatFLAC selects the lossless FLAC format in the download dialog.
const FormatFLAC DownloadFormat = "FLAC"

// Static error definitions for better error handling.
var (
	// ErrReleaseDataMissing indicates the rendered page exposes no release
	// data object, which is what a delisted release looks like.
	ErrReleaseDataMissing = errors.New("release data object is missing from page")
	// ErrDownloadLinkTimeout indicates the download link never materialized.
	ErrDownloadLinkTimeout = errors.New("timed out waiting for download link")
)

// Renderer is the page-rendering collaborator: it can navigate to a URL,
// read a script-exposed data object from the rendered page, and drive
// in-page UI flows. The pipeline never depends on a concrete backend.
//
// A Renderer owns exactly one active page; callers must not use it from
// more than one goroutine.
type Renderer interface {
	// Navigate loads the given URL in the active page and waits for it to load.
	Navigate(ctx context.Context, url string) error
	// ReadTralbumData reads the page-exposed release data object as raw JSON.
	// Returns ErrReleaseDataMissing when the object is absent.
	ReadTralbumData(ctx context.Context) (json.RawMessage, error)
	// SimulateDownloadFlow drives the download dialog on the current page:
	// it selects the requested format and waits for the direct link to
	// appear, returning that link.
	SimulateDownloadFlow(ctx context.Context, format DownloadFormat) (string, error)
	// SimulateEmailCheckout drives the zero-price checkout on the current
	// page, submitting the given email address and postal code. The download
	// link arrives out-of-band by email.
	SimulateEmailCheckout(ctx context.Context, email, postalCode string) error
	// Close shuts down the rendering session and releases its resources.
	Close(ctx context.Context)
}
