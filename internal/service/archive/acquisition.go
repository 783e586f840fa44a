package archive

//go:generate $MOCKGEN -source=acquisition.go -destination=mocks/strategist_mock.go

import (
	"context"
	"fmt"

	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/constants"
	"bandcamp-archiver/internal/logger"
	"bandcamp-archiver/internal/renderer"
	"bandcamp-archiver/internal/utils"
)

// AcquisitionResult records what acquiring one release produced.
type AcquisitionResult struct {
	// Outcome is the terminal acquisition outcome.
	Outcome OutcomeKind
	// AudioPath is the absolute path of the saved audio file, if any.
	AudioPath string
	// BytesDownloaded counts audio bytes written.
	BytesDownloaded int64
}

// Strategist picks and executes the acquisition path for a resolved release.
type Strategist interface {
	// Acquire inspects the release's pricing and gating signals, executes the
	// matching acquisition path, and reports the outcome.
	Acquire(ctx context.Context, ref *ReleaseRef, resolved *ResolveResult) (*AcquisitionResult, error)
}

// StrategistImpl implements Strategist.
type StrategistImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// pageRenderer drives the in-page download and checkout flows.
	pageRenderer renderer.Renderer
	// store persists downloaded audio.
	store Store
	// tagger writes metadata into downloaded FLAC files.
	tagger Tagger
}

// NewStrategist creates and returns a new instance of StrategistImpl.
func NewStrategist(
	cfg *config.Config,
	pageRenderer renderer.Renderer,
	store Store,
	tagger Tagger,
) Strategist {
	return &StrategistImpl{
		cfg:          cfg,
		pageRenderer: pageRenderer,
		store:        store,
		tagger:       tagger,
	}
}

// classifyAcquisition maps a release's pricing and gating signals to the
// acquisition outcome. A present free-download page wins outright, even when
// the release also carries a price: the page is a direct grant. Without one,
// a positive minimum price means the release costs money. A zero-price
// release that demands an email address AND a postal code can be obtained
// through the email checkout; demanding only one of the two is a state the
// checkout cannot complete from, so it stays unresolvable.
func classifyAcquisition(metadata *ReleaseMetadata) OutcomeKind {
	switch {
	case metadata.FreeDownloadPage != "":
		return OutcomeFreeDownload
	case metadata.Current.MinimumPrice > 0:
		return OutcomePaid
	case bool(metadata.Current.RequireEmail) && bool(metadata.Current.RequireEmailPostal):
		return OutcomeEmailGated
	default:
		return OutcomeUnresolvable
	}
}

// Acquire inspects the release's pricing and gating signals, executes the
// matching acquisition path, and reports the outcome.
func (s *StrategistImpl) Acquire(
	ctx context.Context,
	ref *ReleaseRef,
	resolved *ResolveResult,
) (*AcquisitionResult, error) {
	metadata := resolved.Metadata
	outcome := classifyAcquisition(metadata)
	result := &AcquisitionResult{Outcome: outcome}

	switch outcome {
	case OutcomeFreeDownload:
		return result, s.acquireFree(ctx, ref, resolved, result)
	case OutcomePaid:
		logger.Infof(ctx, "Release %q by %q costs money (minimum price %.2f), skipping download",
			metadata.Current.Title, metadata.Artist, metadata.Current.MinimumPrice)

		return result, nil
	case OutcomeEmailGated:
		return result, s.acquireViaEmailCheckout(ctx, metadata)
	case OutcomeUnresolvable:
		logger.Warnf(ctx, "Release %q by %q offers no download path, skipping",
			metadata.Current.Title, metadata.Artist)

		return result, nil
	default:
		return result, nil
	}
}

// acquireFree walks the free-download page's format picker, waits for the
// link it produces, and streams the file into the free audio directory.
// Albums arrive as ZIP bundles, single tracks as bare FLAC files.
func (s *StrategistImpl) acquireFree(
	ctx context.Context,
	ref *ReleaseRef,
	resolved *ResolveResult,
	result *AcquisitionResult,
) error {
	metadata := resolved.Metadata

	logger.Infof(ctx, "Release %q by %q has a free download page, fetching it",
		metadata.Current.Title, metadata.Artist)

	if err := s.pageRenderer.Navigate(ctx, metadata.FreeDownloadPage); err != nil {
		return fmt.Errorf("could not open free download page: %w", err)
	}

	link, err := s.pageRenderer.SimulateDownloadFlow(ctx, renderer.FormatFLAC)
	if err != nil {
		return fmt.Errorf("download flow failed for %q: %w", metadata.Current.Title, err)
	}

	if link == "" {
		return ErrEmptyDownloadLink
	}

	relPath := s.store.FreeAudioFile(ref.Account, s.audioFilename(ref, metadata))

	written, err := s.store.DownloadTo(ctx, link, relPath)
	if err != nil {
		return err
	}

	result.AudioPath = s.store.AbsolutePath(relPath)
	result.BytesDownloaded = written

	s.tagDownloadedTrack(ctx, ref, resolved, result)

	return nil
}

func (s *StrategistImpl) audioFilename(ref *ReleaseRef, metadata *ReleaseMetadata) string {
	extension := constants.ExtensionZIP
	if ref.Kind == ReleaseKindTrack {
		extension = constants.ExtensionFLAC
	}

	return utils.SanitizeFilename(metadata.Current.Title) + extension
}

// tagDownloadedTrack tags a freshly downloaded single-track FLAC. Album ZIP
// bundles are left alone. Tagging failures are logged, not fatal: the audio
// is already on disk.
func (s *StrategistImpl) tagDownloadedTrack(
	ctx context.Context,
	ref *ReleaseRef,
	resolved *ResolveResult,
	result *AcquisitionResult,
) {
	if !s.cfg.TagDownloadedTracks || ref.Kind != ReleaseKindTrack {
		return
	}

	err := s.tagger.TagTrack(ctx, &TagTrackRequest{
		TrackPath: result.AudioPath,
		CoverPath: resolved.FirstArtworkPath,
		Metadata:  resolved.Metadata,
	})
	if err != nil {
		logger.Warnf(ctx, "Could not tag %q: %v", result.AudioPath, err)
	}
}

// acquireViaEmailCheckout runs the zero-price checkout that sends the
// download link to the configured email address.
func (s *StrategistImpl) acquireViaEmailCheckout(ctx context.Context, metadata *ReleaseMetadata) error {
	if s.cfg.Email == "" || s.cfg.PostalCode == "" {
		return ErrCheckoutNotConfigured
	}

	logger.Infof(ctx, "Release %q by %q is email-gated, requesting a link for %s",
		metadata.Current.Title, metadata.Artist, s.cfg.Email)

	if err := s.pageRenderer.SimulateEmailCheckout(ctx, s.cfg.Email, s.cfg.PostalCode); err != nil {
		return fmt.Errorf("email checkout failed for %q: %w", metadata.Current.Title, err)
	}

	logger.Infof(ctx, "Download link for %q will arrive at %s", metadata.Current.Title, s.cfg.Email)

	return nil
}
