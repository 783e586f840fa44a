// Package config loads and validates the application's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"bandcamp-archiver/internal/constants"
	"bandcamp-archiver/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// InputPath is the directory containing the username list.
	InputPath string `mapstructure:"input_path"`
	// UsernameListFilename is the name of the newline-delimited account list inside InputPath.
	UsernameListFilename string `mapstructure:"username_list"`
	// OutputPath is the root directory for the archive.
	OutputPath string `mapstructure:"output_path"`
	// MetadataDirname is the subdirectory for release metadata JSON files.
	MetadataDirname string `mapstructure:"metadata_dir"`
	// ArtworkDirname is the subdirectory for downloaded artwork.
	ArtworkDirname string `mapstructure:"artwork_dir"`
	// FlacsDirname is the subdirectory for downloaded lossless audio.
	FlacsDirname string `mapstructure:"flacs_dir"`
	// RipsDirname is the subdirectory reserved for paid-item rips.
	RipsDirname string `mapstructure:"rips_dir"`
	// FeedRetryCount is the number of attempts for a change-feed fetch.
	FeedRetryCount int64 `mapstructure:"feed_retry_count"`
	// FeedRetryDelay is the fixed pause between feed fetch attempts (e.g. "2s").
	FeedRetryDelay string `mapstructure:"feed_retry_delay"`
	// DownloadRetryCount is the number of attempts for artwork and audio downloads.
	DownloadRetryCount int64 `mapstructure:"download_retry_count"`
	// DownloadRetryDelay is the fixed pause between download attempts (e.g. "2s").
	DownloadRetryDelay string `mapstructure:"download_retry_delay"`
	// Email is the address submitted for email-gated free downloads.
	Email string `mapstructure:"email"`
	// PostalCode is the postal code submitted for email-gated free downloads.
	PostalCode string `mapstructure:"postal_code"`
	// Headless controls whether the browser runs without a visible window.
	Headless bool `mapstructure:"headless"`
	// TagDownloadedTracks enables FLAC tagging of downloaded singles.
	TagDownloadedTracks bool `mapstructure:"tag_downloaded_tracks"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// FeedBaseURL is the base URL of the change-feed bridge (set automatically).
	FeedBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedFeedRetryDelay is the parsed pause between feed fetch attempts.
	ParsedFeedRetryDelay time.Duration
	// ParsedDownloadRetryDelay is the parsed pause between download attempts.
	ParsedDownloadRetryDelay time.Duration
}

const (
	// FeedBaseURL is the base URL of the rss-bridge instance serving Bandcamp change feeds.
	FeedBaseURL = "https://rss-bridge-1.herokuapp.com/"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".bandcamp-archiver.yaml"

	// Default directory names inside the output root.
	defaultMetadataDirname = "metadata"
	defaultArtworkDirname  = "artwork"
	defaultFlacsDirname    = "flacs"
	defaultRipsDirname     = "rips"

	// defaultUsernameListFilename is the default account list filename.
	defaultUsernameListFilename = "usernames.txt"

	// Default retry policy for remote calls.
	defaultRetryCount = 3
	defaultRetryDelay = 2 * time.Second
)

// Static error definitions for better error handling.
var (
	// ErrEmptyInputPath indicates that the input directory is not configured.
	ErrEmptyInputPath = errors.New("input_path cannot be empty")
	// ErrEmptyOutputPath indicates that the output directory is not configured.
	ErrEmptyOutputPath = errors.New("output_path cannot be empty")
	// ErrInvalidEmail indicates that the configured email address is not parseable.
	ErrInvalidEmail = errors.New("email is not a valid address")
	// ErrMissingPostalCode indicates an email without a postal code; gated checkouts need both.
	ErrMissingPostalCode = errors.New("postal_code must be set when email is set")
	// ErrInvalidFeedRetryCount indicates that the feed retry count is invalid.
	ErrInvalidFeedRetryCount = errors.New("feed_retry_count must be a positive integer")
	// ErrInvalidDownloadRetryCount indicates that the download retry count is invalid.
	ErrInvalidDownloadRetryCount = errors.New("download_retry_count must be a positive integer")
	// ErrInvalidFeedRetryDelay indicates that the feed retry delay is invalid.
	ErrInvalidFeedRetryDelay = errors.New("feed_retry_delay must be positive")
	// ErrInvalidDownloadRetryDelay indicates that the download retry delay is invalid.
	ErrInvalidDownloadRetryDelay = errors.New("download_retry_delay must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity, applies defaults,
// and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.FeedBaseURL = FeedBaseURL

	if strings.TrimSpace(cfg.InputPath) == "" {
		return ErrEmptyInputPath
	}

	if strings.TrimSpace(cfg.OutputPath) == "" {
		return ErrEmptyOutputPath
	}

	if cfg.UsernameListFilename == "" {
		cfg.UsernameListFilename = defaultUsernameListFilename
	}

	applyDirnameDefaults(cfg)

	if cfg.FeedRetryCount == 0 {
		cfg.FeedRetryCount = defaultRetryCount
	}

	if cfg.FeedRetryCount < 0 {
		return ErrInvalidFeedRetryCount
	}

	if cfg.DownloadRetryCount == 0 {
		cfg.DownloadRetryCount = defaultRetryCount
	}

	if cfg.DownloadRetryCount < 0 {
		return ErrInvalidDownloadRetryCount
	}

	var err error

	cfg.ParsedFeedRetryDelay, err = parseRetryDelay(cfg.FeedRetryDelay, ErrInvalidFeedRetryDelay)
	if err != nil {
		return err
	}

	cfg.ParsedDownloadRetryDelay, err = parseRetryDelay(cfg.DownloadRetryDelay, ErrInvalidDownloadRetryDelay)
	if err != nil {
		return err
	}

	if cfg.Email != "" {
		if _, err = mail.ParseAddress(cfg.Email); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, cfg.Email)
		}

		if strings.TrimSpace(cfg.PostalCode) == "" {
			return ErrMissingPostalCode
		}
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if cfg.LogLevel != "" && !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

func applyDirnameDefaults(cfg *Config) {
	if cfg.MetadataDirname == "" {
		cfg.MetadataDirname = defaultMetadataDirname
	}

	if cfg.ArtworkDirname == "" {
		cfg.ArtworkDirname = defaultArtworkDirname
	}

	if cfg.FlacsDirname == "" {
		cfg.FlacsDirname = defaultFlacsDirname
	}

	if cfg.RipsDirname == "" {
		cfg.RipsDirname = defaultRipsDirname
	}
}

func parseRetryDelay(value string, invalidErr error) (time.Duration, error) {
	if value == "" {
		return defaultRetryDelay, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse retry delay: %w", err)
	}

	if parsed <= 0 {
		return 0, invalidErr
	}

	return parsed, nil
}

// starterConfig mirrors Config with yaml tags, in the order the starter file
// should present the options.
type starterConfig struct {
	InputPath           string `yaml:"input_path"`
	UsernameList        string `yaml:"username_list"`
	OutputPath          string `yaml:"output_path"`
	MetadataDir         string `yaml:"metadata_dir"`
	ArtworkDir          string `yaml:"artwork_dir"`
	FlacsDir            string `yaml:"flacs_dir"`
	RipsDir             string `yaml:"rips_dir"`
	FeedRetryCount      int64  `yaml:"feed_retry_count"`
	FeedRetryDelay      string `yaml:"feed_retry_delay"`
	DownloadRetryCount  int64  `yaml:"download_retry_count"`
	DownloadRetryDelay  string `yaml:"download_retry_delay"`
	Email               string `yaml:"email"`
	PostalCode          string `yaml:"postal_code"`
	Headless            bool   `yaml:"headless"`
	TagDownloadedTracks bool   `yaml:"tag_downloaded_tracks"`
	LogLevel            string `yaml:"log_level"`
}

// SaveDefaultConfig writes a starter configuration file to the given path.
// It refuses to overwrite an existing file.
func SaveDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %q already exists", path)
	}

	starter := starterConfig{
		InputPath:          "input",
		UsernameList:       defaultUsernameListFilename,
		OutputPath:         "output",
		MetadataDir:        defaultMetadataDirname,
		ArtworkDir:         defaultArtworkDirname,
		FlacsDir:           defaultFlacsDirname,
		RipsDir:            defaultRipsDirname,
		FeedRetryCount:     defaultRetryCount,
		FeedRetryDelay:     defaultRetryDelay.String(),
		DownloadRetryCount: defaultRetryCount,
		DownloadRetryDelay: defaultRetryDelay.String(),
		Headless:           true,
		LogLevel:           "info",
	}

	content, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
