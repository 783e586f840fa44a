package archive

//go:generate $MOCKGEN -source=resolver.go -destination=mocks/resolver_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"regexp"

	"bandcamp-archiver/internal/client/bandcamp"
	"bandcamp-archiver/internal/client/feed"
	"bandcamp-archiver/internal/constants"
	"bandcamp-archiver/internal/logger"
	"bandcamp-archiver/internal/renderer"
)

// latestMetadataFilename is the fixed-name snapshot of the most recently
// processed release per account. Last write wins; the per-release
// {slug}.json files are the durable archive.
const latestMetadataFilename = "metadata" + constants.ExtensionJSON

// albumPathTailPattern matches the album path tail of a release URL, which
// gets swapped for a track's own link when visiting sibling track pages.
//
//nolint:gochecknoglobals // Immutable, pre-compiled regex pattern used as a constant.
var albumPathTailPattern = regexp.MustCompile(`/album/.+`)

// ResolveResult carries a resolved release and what its resolution persisted.
type ResolveResult struct {
	// Metadata is the parsed release data object.
	Metadata *ReleaseMetadata
	// ArtworkURLs is the reconciled artwork set, in discovery order.
	ArtworkURLs []string
	// ArtworkSaved counts artwork files actually written.
	ArtworkSaved int64
	// BytesDownloaded counts artwork bytes written.
	BytesDownloaded int64
	// FirstArtworkPath is the absolute path of the first artwork file saved,
	// used as the cover source when tagging; empty if none succeeded.
	FirstArtworkPath string
}

// Resolver turns a feed item into resolved release metadata, persisting the
// metadata and the release's reconciled artwork set along the way.
type Resolver interface {
	// Resolve renders the release page, persists its metadata, reconciles
	// and downloads its artwork set, and returns the parsed metadata.
	Resolve(ctx context.Context, item feed.Item, ref *ReleaseRef) (*ResolveResult, error)
}

// ResolverImpl implements Resolver.
type ResolverImpl struct {
	// pageRenderer reads release pages.
	pageRenderer renderer.Renderer
	// bandcampClient back-fills artwork identifiers from track pages.
	bandcampClient bandcamp.Client
	// store persists metadata and artwork.
	store Store
}

// NewResolver creates and returns a new instance of ResolverImpl.
func NewResolver(pageRenderer renderer.Renderer, bandcampClient bandcamp.Client, store Store) Resolver {
	return &ResolverImpl{
		pageRenderer:   pageRenderer,
		bandcampClient: bandcampClient,
		store:          store,
	}
}

// Resolve renders the release page, persists its metadata, reconciles and
// downloads its artwork set, and returns the parsed metadata.
func (r *ResolverImpl) Resolve(ctx context.Context, item feed.Item, ref *ReleaseRef) (*ResolveResult, error) {
	if err := r.pageRenderer.Navigate(ctx, item.URL); err != nil {
		return nil, fmt.Errorf("could not open release page %q: %w", item.URL, err)
	}

	raw, err := r.pageRenderer.ReadTralbumData(ctx)
	if err != nil {
		// Delisted release or dead link; the caller skips the item.
		return nil, fmt.Errorf("could not read release data for %q: %w", item.URL, err)
	}

	var metadata ReleaseMetadata
	if err = json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("could not parse release data for %q: %w", item.URL, err)
	}

	metadata.Raw = raw

	if err = r.store.EnsureAccountLayout(ref.Account); err != nil {
		return nil, err
	}

	if err = r.persistMetadata(ref, raw); err != nil {
		return nil, err
	}

	result := &ResolveResult{
		Metadata:    &metadata,
		ArtworkURLs: r.collectArtworkURLs(ctx, item.URL, &metadata),
	}

	r.downloadArtwork(ctx, ref.Account, result)

	return result, nil
}

// persistMetadata writes the raw release payload under the release's own
// slug and under the account's fixed-name latest snapshot.
func (r *ResolverImpl) persistMetadata(ref *ReleaseRef, raw json.RawMessage) error {
	slugFile := r.store.MetadataFile(ref.Account, ref.Slug+constants.ExtensionJSON)
	if err := r.store.Write(slugFile, raw); err != nil {
		return err
	}

	return r.store.Write(r.store.MetadataFile(ref.Account, latestMetadataFilename), raw)
}

// collectArtworkURLs builds the release's artwork set: the release's own
// artwork first, then each constituent track's, back-filled from the track's
// own page when the mini-object lacks an identifier. URLs are deduplicated
// by exact string, preserving first-seen order.
func (r *ResolverImpl) collectArtworkURLs(
	ctx context.Context,
	releaseURL string,
	metadata *ReleaseMetadata,
) []string {
	var (
		urls []string
		seen = make(map[string]struct{})
	)

	appendArtworkURL := func(artID int64) {
		artworkURL := bandcamp.ArtworkURL(artID)
		if _, ok := seen[artworkURL]; ok {
			return
		}

		seen[artworkURL] = struct{}{}

		urls = append(urls, artworkURL)
	}

	if metadata.ArtID != nil {
		appendArtworkURL(*metadata.ArtID)
	}

	logger.Debugf(ctx, "Iterating over %d track entries", len(metadata.TrackInfo))

	for _, track := range metadata.TrackInfo {
		// A single's track list contains the release itself; visiting it
		// again would fetch the page we just rendered.
		if track.ID == metadata.ID {
			continue
		}

		artID := track.ArtID
		if artID == nil {
			fetched, err := r.bandcampClient.FetchTrackArtID(ctx, deriveTrackURL(releaseURL, track.TitleLink))
			if err != nil {
				logger.Warnf(ctx, "Could not back-fill artwork for track %q of %q: %v",
					track.Title, releaseURL, err)

				continue
			}

			artID = &fetched
		}

		appendArtworkURL(*artID)
	}

	return urls
}

// deriveTrackURL swaps the album path tail of the release URL for the
// track's own link.
func deriveTrackURL(releaseURL, titleLink string) string {
	return albumPathTailPattern.ReplaceAllString(releaseURL, titleLink)
}

// downloadArtwork fetches every artwork URL in the set sequentially. A
// single failed download is logged and skipped; it does not abort the rest
// of the set.
func (r *ResolverImpl) downloadArtwork(ctx context.Context, account string, result *ResolveResult) {
	total := len(result.ArtworkURLs)

	for i, artworkURL := range result.ArtworkURLs {
		logger.Infof(ctx, "[%d/%d] Downloading artwork %s", i+1, total, artworkURL)

		filename := path.Base(artworkPath(artworkURL))
		relPath := r.store.ArtworkFile(account, filename)

		written, err := r.store.DownloadTo(ctx, artworkURL, relPath)
		if err != nil {
			logger.Warnf(ctx, "Could not download artwork %s for %q: %v", artworkURL, account, err)

			continue
		}

		result.ArtworkSaved++
		result.BytesDownloaded += written

		if result.FirstArtworkPath == "" {
			result.FirstArtworkPath = r.store.AbsolutePath(relPath)
		}
	}
}

// artworkPath returns the path component of an artwork URL, falling back to
// the raw string when it does not parse.
func artworkPath(artworkURL string) string {
	parsed, err := url.Parse(artworkURL)
	if err != nil {
		return artworkURL
	}

	return parsed.Path
}
