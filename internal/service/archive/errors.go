package archive

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnknownAccount indicates a release URL from which no account handle
	// could be extracted.
	ErrUnknownAccount = errors.New("could not determine account from URL")
	// ErrUnknownRelease indicates a release URL matching neither the album
	// nor the track path pattern.
	ErrUnknownRelease = errors.New("could not determine album or track from URL")
	// ErrEmptyDownloadLink indicates the in-page download flow produced no link.
	ErrEmptyDownloadLink = errors.New("download flow produced an empty link")
	// ErrCheckoutNotConfigured indicates an email-gated release was found but
	// no email address is configured for the checkout.
	ErrCheckoutNotConfigured = errors.New("email-gated release needs email and postal_code configured")
)
