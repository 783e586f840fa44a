package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ReleaseKind distinguishes the two kinds of release a feed item can reference.
type ReleaseKind string

const (
	// ReleaseKindAlbum is a multi-track release.
	ReleaseKindAlbum ReleaseKind = "album"
	// ReleaseKindTrack is a single-track release.
	ReleaseKindTrack ReleaseKind = "track"
)

// ReleaseRef identifies a release by account, kind, and URL slug.
// It is derived from a feed item's URL by the classifier.
type ReleaseRef struct {
	// Account is the URL-friendly account handle.
	Account string
	// Kind is the release kind, exactly one of album or track.
	Kind ReleaseKind
	// Slug is the URL-friendly release name.
	Slug string
}

// ReleaseMetadata is the release data object exposed by the rendered page.
// Only the fields the pipeline inspects are mapped; Raw preserves the full
// payload for persistence.
type ReleaseMetadata struct {
	// ItemType is the remote-declared release kind ("album" or "track").
	ItemType string `json:"item_type"`
	// ID is the release's own numeric identifier.
	ID int64 `json:"id"`
	// Artist is the display name of the releasing artist.
	Artist string `json:"artist"`
	// ArtID is the release's top-level artwork identifier, when present.
	ArtID *int64 `json:"art_id"`
	// FreeDownloadPage is the free-download entry point, when present.
	FreeDownloadPage string `json:"freeDownloadPage"`
	// URL is the release's canonical URL.
	URL string `json:"url"`
	// Current carries the pricing and gating fields.
	Current ReleasePricing `json:"current"`
	// TrackInfo lists the release's constituent tracks. Present on both
	// albums and singles; for a single, the only entry is the release itself.
	TrackInfo []TrackEntry `json:"trackinfo"`
	// Raw is the unmodified payload as read from the page.
	Raw json.RawMessage `json:"-"`
}

// ReleasePricing is the pricing/gating slice of the release data object.
type ReleasePricing struct {
	// Title is the release title.
	Title string `json:"title"`
	// MinimumPrice is the minimum purchase price; 0 means name-your-price.
	MinimumPrice float64 `json:"minimum_price"`
	// RequireEmail is set when the checkout demands an email address.
	RequireEmail Flag `json:"require_email"`
	// RequireEmailPostal is set when the checkout also demands a postal code.
	RequireEmailPostal Flag `json:"require_email_0"`
}

// TrackEntry is one track belonging to a release.
type TrackEntry struct {
	// ID is the track's numeric identifier.
	ID int64 `json:"id"`
	// Title is the track title.
	Title string `json:"title"`
	// TitleLink is the track's URL path (e.g. "/track/some-song").
	TitleLink string `json:"title_link"`
	// ArtID is the track's artwork identifier; usually absent on the
	// mini-objects and back-filled from the track's own page.
	ArtID *int64 `json:"art_id"`
}

// Flag is a truthiness flag as serialized by the release page: the remote
// encodes these as null, a boolean, or a number.
type Flag bool

// UnmarshalJSON accepts null, booleans, and numbers, treating any non-zero
// number as set.
func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch string(trimmed) {
	case "null", "false":
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("flag is neither null, bool, nor number: %w", err)
	}

	*f = number != 0

	return nil
}

// MarshalJSON encodes the flag as a plain boolean.
func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// OutcomeKind is the terminal acquisition outcome of one release.
type OutcomeKind int

const (
	// OutcomeUnresolvable means no acquisition signal was present.
	OutcomeUnresolvable OutcomeKind = iota
	// OutcomeFreeDownload means a direct lossless download was available.
	OutcomeFreeDownload
	// OutcomePaid means the release demands payment; nothing to do.
	OutcomePaid
	// OutcomeEmailGated means a zero-price checkout sends the link by email.
	OutcomeEmailGated
)

// String returns a human-readable outcome name.
func (o OutcomeKind) String() string {
	switch o {
	case OutcomeFreeDownload:
		return "free download"
	case OutcomePaid:
		return "paid"
	case OutcomeEmailGated:
		return "email-gated"
	case OutcomeUnresolvable:
		return "unresolvable"
	default:
		return "unknown"
	}
}
