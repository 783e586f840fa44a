package bandcamp

import (
	"errors"
	"fmt"
	"strings"
)

// Track pages embed a JSON blob inside the data-blob attribute of the
// pagedata div:
//
//	<div id="pagedata" data-blob="{&quot;...&quot;}"></div>
//
// The attribute value is HTML-entity-escaped; only the quote entity matters
// because the blob is JSON. The extraction is delimiter-based on purpose:
// this is a known fixed format, not general HTML.
const (
	pageDataMarker   = `id="pagedata"`
	blobAttrMarker   = `data-blob="`
	blobAttrClosing  = `">`
	escapedQuote     = "&quot;"
	artworkURLScheme = "https://f4.bcbits.com/img/a%d_0.jpg"
)

// Static error definitions for better error handling.
var (
	// ErrPageDataNotFound indicates the pagedata blob is absent from the HTML response.
	ErrPageDataNotFound = errors.New("pagedata blob not found in page")
	// ErrPageDataMalformed indicates the pagedata blob is present but not terminated.
	ErrPageDataMalformed = errors.New("pagedata blob is malformed")
)

// ExtractPageData extracts the embedded JSON blob from a track page's HTML.
// A missing or unterminated blob is a reported error, never a crash.
func ExtractPageData(html string) ([]byte, error) {
	markerIndex := strings.Index(html, pageDataMarker)
	if markerIndex == -1 {
		return nil, ErrPageDataNotFound
	}

	rest := html[markerIndex+len(pageDataMarker):]

	blobStart := strings.Index(rest, blobAttrMarker)
	if blobStart == -1 {
		return nil, ErrPageDataNotFound
	}

	rest = rest[blobStart+len(blobAttrMarker):]

	blobEnd := strings.Index(rest, blobAttrClosing)
	if blobEnd == -1 {
		return nil, ErrPageDataMalformed
	}

	blob := strings.ReplaceAll(rest[:blobEnd], escapedQuote, `"`)

	return []byte(blob), nil
}

// ArtworkURL builds the artwork image URL for the given art identifier.
// The fixed "_0" suffix selects the original resolution.
func ArtworkURL(artID int64) string {
	return fmt.Sprintf(artworkURLScheme, artID)
}
