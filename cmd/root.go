package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bandcamp-archiver/internal/app"
	"bandcamp-archiver/internal/config"
	"bandcamp-archiver/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "bandcamp-archiver [flags]",
		Short: "Archive the releases of Bandcamp accounts.",
		Long: `Bandcamp Archiver walks the release feed of every account listed in the
input file and, for each release:
- Saves the release metadata
- Downloads the full artwork set
- Fetches the audio when the release offers a free download
- Requests an email link when the release is email-gated

Paid releases are logged and skipped.`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteRootCommand(cmd.Context(), appConfig)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"input",
		"i",
		"",
		"directory containing the account list file.")

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save metadata, artwork, and audio (the path will be created if it doesn't exist).")

	rootCmdFlags.String(
		"email",
		"",
		"email address used for email-gated checkouts.")

	rootCmdFlags.String(
		"postal-code",
		"",
		"postal code used for email-gated checkouts.")

	rootCmdFlags.Bool(
		"headless",
		true,
		"run the browser headless; disable to watch the pages being driven.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	configFilename := configFilenameFromFlag
	if configFilename == "" {
		configFilename = config.DefaultConfigFilename
	}

	// First run: write a starter file and tell the user where to fill it in.
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		if saveErr := config.SaveDefaultConfig(configFilename); saveErr != nil {
			logger.Fatalf(cmd.Context(), "Failed to write starter configuration: %v", saveErr)
		}

		logger.Fatalf(cmd.Context(),
			"Wrote starter configuration to %q, fill in input_path and output_path and run again",
			configFilename)
	}

	var err error

	appConfig, err = config.LoadConfig(configFilename)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("input"); flag != nil && flag.Changed {
		cfg.InputPath, _ = flags.GetString("input")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("email"); flag != nil && flag.Changed {
		cfg.Email, _ = flags.GetString("email")
	}

	if flag := flags.Lookup("postal-code"); flag != nil && flag.Changed {
		cfg.PostalCode, _ = flags.GetString("postal-code")
	}

	if flag := flags.Lookup("headless"); flag != nil && flag.Changed {
		cfg.Headless, _ = flags.GetBool("headless")
	}

	return config.ValidateConfig(cfg)
}
