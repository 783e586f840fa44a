package archive

import (
	"fmt"
	"regexp"

	"bandcamp-archiver/internal/utils"
)

// URLClassifier derives a ReleaseRef from a release URL.
type URLClassifier interface {
	// Classify extracts the account handle, release kind, and slug from a
	// release URL. Unparseable URLs are an error; callers skip the item.
	Classify(url string) (*ReleaseRef, error)
}

// URLClassifierImpl implements URLClassifier via pattern matching.
type URLClassifierImpl struct{}

// The feed only hands out display names; the URL-friendly account handle has
// to come from the release URL itself, either the subdomain or, for accounts
// hosted under bandcamp.com directly, the first path segment.
//
//nolint:gochecknoglobals // Immutable, pre-compiled regex patterns used as constants.
var (
	accountSubdomainPattern = regexp.MustCompile(`//(?P<account>[^/.]+)\.bandcamp`)
	accountPathPattern      = regexp.MustCompile(`//bandcamp\.com/(?P<account>[^/?#]+)`)
	albumPathPattern        = regexp.MustCompile(`/album/(?P<slug>[^/?#]+)`)
	trackPathPattern        = regexp.MustCompile(`/track/(?P<slug>[^/?#]+)`)
)

// NewURLClassifier creates and returns a new instance of URLClassifierImpl.
func NewURLClassifier() URLClassifier {
	return &URLClassifierImpl{}
}

// Classify extracts the account handle, release kind, and slug from a release URL.
func (c *URLClassifierImpl) Classify(url string) (*ReleaseRef, error) {
	account := utils.ExtractNamedGroup(accountSubdomainPattern, "account", url)
	if account == "" {
		account = utils.ExtractNamedGroup(accountPathPattern, "account", url)
	}

	if account == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, url)
	}

	if slug := utils.ExtractNamedGroup(albumPathPattern, "slug", url); slug != "" {
		return &ReleaseRef{Account: account, Kind: ReleaseKindAlbum, Slug: slug}, nil
	}

	if slug := utils.ExtractNamedGroup(trackPathPattern, "slug", url); slug != "" {
		return &ReleaseRef{Account: account, Kind: ReleaseKindTrack, Slug: slug}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownRelease, url)
}
