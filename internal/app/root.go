package app

import (
	"context"
	"path/filepath"

	"bandcamp-archiver/internal/client/bandcamp"
	"bandcamp-archiver/internal/client/feed"
	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/logger"
	"bandcamp-archiver/internal/renderer"
	"bandcamp-archiver/internal/service/archive"
	"bandcamp-archiver/internal/utils"
)

// ExecuteRootCommand is the entry point for the application.
// It reads the account list, initializes the clients and the page renderer,
// and starts the archiving run.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	accountsPath := filepath.Join(cfg.InputPath, cfg.UsernameListFilename)

	accounts, err := utils.ReadUniqueLinesFromFile(accountsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read account list: %v", err)
	}

	if len(accounts) == 0 {
		logger.Fatalf(ctx, "Account list %q is empty, nothing to archive", accountsPath)
	}

	bandcampClient, err := bandcamp.NewClient()
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize bandcamp client: %v", err)
	}

	pageRenderer, err := renderer.NewRodRenderer(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to launch browser: %v", err)
	}

	defer pageRenderer.Close(ctx)

	feedClient := feed.NewClient(cfg)
	store := archive.NewStore(cfg, bandcampClient)
	resolver := archive.NewResolver(pageRenderer, bandcampClient, store)
	strategist := archive.NewStrategist(cfg, pageRenderer, store, archive.NewTagger())

	s := archive.NewService(cfg, feedClient, archive.NewURLClassifier(), resolver, strategist, store)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintRunSummary(ctx)
	}()

	s.ArchiveAccounts(ctx, accounts)
}
