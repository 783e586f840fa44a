package archive

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"

	"bandcamp-archiver/internal/client/feed"
	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/logger"
)

// Service provides methods for archiving the releases of Bandcamp accounts.
type Service interface {
	// ArchiveAccounts runs the full pipeline for every account, in order.
	ArchiveAccounts(ctx context.Context, accounts []string)
	// PrintRunSummary prints a formatted summary of run statistics.
	PrintRunSummary(ctx context.Context)
}

// ServiceImpl implements the account-by-account, release-by-release archiving run.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// feedClient fetches per-account release feeds.
	feedClient feed.Client
	// classifier derives release references from feed item URLs.
	classifier URLClassifier
	// resolver resolves releases and persists their metadata and artwork.
	resolver Resolver
	// strategist picks and executes the acquisition path per release.
	strategist Strategist
	// store owns the output directory layout.
	store Store
	// stats tracks run statistics for the current session.
	stats *RunStatistics
}

// NewService creates an archiving service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	feedClient feed.Client,
	classifier URLClassifier,
	resolver Resolver,
	strategist Strategist,
	store Store,
) Service {
	return &ServiceImpl{
		cfg:        cfg,
		feedClient: feedClient,
		classifier: classifier,
		resolver:   resolver,
		strategist: strategist,
		store:      store,
		stats:      NewRunStatistics(),
	}
}

// ArchiveAccounts runs the full pipeline for every account, in order.
// Accounts are isolated from each other: a failing feed fetch skips that
// account and moves on. A cancelled context stops the run between items.
func (s *ServiceImpl) ArchiveAccounts(ctx context.Context, accounts []string) {
	if err := s.store.EnsureLayout(); err != nil {
		logger.Errorf(ctx, "Failed to create output layout: %v", err)

		return
	}

	logger.Infof(ctx, "Starting archiving run for %d account(s)", len(accounts))

	for _, account := range accounts {
		if ctx.Err() != nil {
			logger.Warnf(ctx, "Run cancelled, stopping before account %q", account)

			return
		}

		failed := s.archiveAccount(ctx, account)
		s.stats.RecordAccount(failed)
	}

	logger.Info(ctx, "Archiving run completed")
}

// archiveAccount fetches one account's feed and processes its items in feed
// order. Items are isolated from each other: one broken release does not
// stop the rest of the account.
func (s *ServiceImpl) archiveAccount(ctx context.Context, account string) (failed bool) {
	logger.Infof(ctx, "Fetching release feed for %q", account)

	releaseFeed, err := s.feedClient.FetchFeed(ctx, account)
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch feed for %q, skipping account: %v", account, err)

		return true
	}

	total := len(releaseFeed.Items)
	logger.Infof(ctx, "Feed for %q lists %d release(s)", account, total)

	for i, item := range releaseFeed.Items {
		if ctx.Err() != nil {
			logger.Warnf(ctx, "Run cancelled, stopping account %q", account)

			return false
		}

		logger.Infof(ctx, "[%d/%d] Processing %q (%s)", i+1, total, item.Title, item.URL)

		if err = s.archiveRelease(ctx, item); err != nil {
			logger.Errorf(ctx, "Failed to process %q, skipping release: %v", item.URL, err)
		}
	}

	return false
}

// archiveRelease runs classify, resolve, acquire for a single feed item.
func (s *ServiceImpl) archiveRelease(ctx context.Context, item feed.Item) error {
	ref, err := s.classifier.Classify(item.URL)
	if err != nil {
		// Feeds also carry merch and announcement links; those are expected
		// to fall through here.
		if errors.Is(err, ErrUnknownRelease) {
			logger.Infof(ctx, "Skipping non-release item %q", item.URL)

			return nil
		}

		return err
	}

	resolved, err := s.resolver.Resolve(ctx, item, ref)
	if err != nil {
		s.stats.RecordResolveFailure()

		return err
	}

	s.stats.RecordResolved(resolved)

	result, err := s.strategist.Acquire(ctx, ref, resolved)
	if err != nil {
		return err
	}

	s.stats.RecordAcquisition(result)

	return nil
}

// PrintRunSummary prints a formatted summary of run statistics.
func (s *ServiceImpl) PrintRunSummary(ctx context.Context) {
	s.stats.PrintSummary(ctx)
}
