package archive

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"bandcamp-archiver/internal/client/bandcamp"
	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/constants"
	"bandcamp-archiver/internal/logger"
	"bandcamp-archiver/internal/utils"
)

// freeSubdirname separates free downloads from the paid rips the flacs
// directory is also meant to hold.
const freeSubdirname = "free"

// Store is the content-addressed-by-name output layout, keyed by account and
// release identifiers. Directory creation is idempotent; any creation failure
// other than pre-existence indicates an unusable output destination and is
// fatal to the run.
type Store interface {
	// EnsureLayout creates the root output directory tree.
	EnsureLayout() error
	// EnsureAccountLayout creates the per-account subdirectories.
	EnsureAccountLayout(account string) error
	// Write stores bytes under the given path relative to the output root.
	Write(relPath string, data []byte) error
	// DownloadTo streams the content behind url into the given relative path,
	// returning the number of bytes written.
	DownloadTo(ctx context.Context, url, relPath string) (int64, error)
	// MetadataFile returns the relative path of a metadata file for an account.
	MetadataFile(account, filename string) string
	// ArtworkFile returns the relative path of an artwork file for an account.
	ArtworkFile(account, filename string) string
	// FreeAudioFile returns the relative path of a free-download audio file.
	FreeAudioFile(account, filename string) string
	// AbsolutePath resolves a relative path against the output root.
	AbsolutePath(relPath string) string
}

// StoreImpl implements Store on the local filesystem.
type StoreImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// bandcampClient streams remote content for DownloadTo.
	bandcampClient bandcamp.Client
}

// NewStore creates and returns a new instance of StoreImpl.
func NewStore(cfg *config.Config, bandcampClient bandcamp.Client) Store {
	return &StoreImpl{
		cfg:            cfg,
		bandcampClient: bandcampClient,
	}
}

// EnsureLayout creates the root output directory tree.
func (s *StoreImpl) EnsureLayout() error {
	directories := []string{
		s.cfg.OutputPath,
		filepath.Join(s.cfg.OutputPath, s.cfg.MetadataDirname),
		filepath.Join(s.cfg.OutputPath, s.cfg.ArtworkDirname),
		filepath.Join(s.cfg.OutputPath, s.cfg.FlacsDirname),
		filepath.Join(s.cfg.OutputPath, s.cfg.FlacsDirname, freeSubdirname),
		filepath.Join(s.cfg.OutputPath, s.cfg.RipsDirname),
	}

	return ensureDirectories(directories)
}

// EnsureAccountLayout creates the per-account subdirectories.
func (s *StoreImpl) EnsureAccountLayout(account string) error {
	directories := []string{
		filepath.Join(s.cfg.OutputPath, s.cfg.MetadataDirname, account),
		filepath.Join(s.cfg.OutputPath, s.cfg.ArtworkDirname, account),
		filepath.Join(s.cfg.OutputPath, s.cfg.FlacsDirname, freeSubdirname, account),
		filepath.Join(s.cfg.OutputPath, s.cfg.RipsDirname, account),
	}

	return ensureDirectories(directories)
}

func ensureDirectories(directories []string) error {
	for _, directory := range directories {
		// MkdirAll treats pre-existing directories as success.
		if err := os.MkdirAll(directory, constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", directory, err)
		}
	}

	return nil
}

// Write stores bytes under the given path relative to the output root.
func (s *StoreImpl) Write(relPath string, data []byte) error {
	destination := s.AbsolutePath(relPath)

	if err := os.WriteFile(destination, data, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %q: %w", relPath, err)
	}

	return nil
}

// DownloadTo streams the content behind url into the given relative path.
// The transfer goes through a UUID-suffixed temp file that is renamed into
// place on completion, so an interrupted download never leaves a plausible-
// looking partial file behind. The download is retried with the configured
// download retry policy.
func (s *StoreImpl) DownloadTo(ctx context.Context, url, relPath string) (int64, error) {
	policy := utils.RetryPolicy{
		Count: s.cfg.DownloadRetryCount,
		Delay: s.cfg.ParsedDownloadRetryDelay,
	}

	written, errs := utils.Retry(ctx, policy, func(ctx context.Context) (int64, error) {
		return s.downloadOnce(ctx, url, relPath)
	})
	if len(errs) > 0 {
		return 0, fmt.Errorf("failed to download %q: %w", url, utils.JoinRetryErrors(errs))
	}

	return written, nil
}

func (s *StoreImpl) downloadOnce(ctx context.Context, url, relPath string) (int64, error) {
	destination := s.AbsolutePath(relPath)
	tempPath := destination + "." + uuid.New().String() + ".part"

	file, err := os.OpenFile(filepath.Clean(tempPath),
		os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	defer os.Remove(tempPath)
	defer file.Close()

	reader, contentLength, err := s.bandcampClient.DownloadFromURL(ctx, url)
	if err != nil {
		return 0, err
	}

	defer reader.Close()

	bar := progressbar.DefaultBytes(contentLength, filepath.Base(relPath))

	written, err := io.Copy(io.MultiWriter(file, bar), reader)
	if err != nil {
		return 0, fmt.Errorf("failed to stream %q: %w", url, err)
	}

	if err = file.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush %q: %w", relPath, err)
	}

	if err = os.Rename(tempPath, destination); err != nil {
		return 0, fmt.Errorf("failed to move download into place: %w", err)
	}

	logger.Debugf(ctx, "Downloaded %s (%s)", relPath, humanize.Bytes(uint64(written)))

	return written, nil
}

// MetadataFile returns the relative path of a metadata file for an account.
func (s *StoreImpl) MetadataFile(account, filename string) string {
	return filepath.Join(s.cfg.MetadataDirname, account, filename)
}

// ArtworkFile returns the relative path of an artwork file for an account.
func (s *StoreImpl) ArtworkFile(account, filename string) string {
	return filepath.Join(s.cfg.ArtworkDirname, account, filename)
}

// FreeAudioFile returns the relative path of a free-download audio file.
func (s *StoreImpl) FreeAudioFile(account, filename string) string {
	return filepath.Join(s.cfg.FlacsDirname, freeSubdirname, account, filename)
}

// AbsolutePath resolves a relative path against the output root.
func (s *StoreImpl) AbsolutePath(relPath string) string {
	return filepath.Join(s.cfg.OutputPath, relPath)
}
