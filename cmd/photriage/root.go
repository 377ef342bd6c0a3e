package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"photriage/internal/app"
	"photriage/internal/config"
	apperrors "photriage/internal/errors"
	"photriage/internal/infra/exif"
	osfs "photriage/internal/infra/fs"
	"photriage/internal/logging"
	"photriage/internal/presentation"
	"photriage/internal/preview"
	"photriage/internal/tui"
)

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "photriage",
		Short: "Interactively sort photos from one directory into another",
		Long: `photriage walks the files of a source directory one by one, shows a
terminal preview where it can, and asks whether to move, copy, skip or
delete each file. Deletion relocates the file to a temporary holding
directory instead of erasing it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return apperrors.Wrap(apperrors.InvalidInput, "config", "", err)
			}
			ctx := setupLogging(cmd.Context(), cfg.Debug)

			logger := logging.New(cmd.OutOrStdout(), cfg.Verbose)

			var previewer app.Previewer
			if !cfg.NoPreview {
				previewer = preview.Renderer{Writer: cmd.OutOrStdout()}
			}

			var prompter app.Prompter
			if cfg.Plain {
				prompter = &presentation.StdinPrompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			} else {
				prompter = tui.Prompter{}
			}

			triager := app.Triager{
				FS:       &osfs.OSFS{},
				Dates:    exif.Reader{},
				Preview:  previewer,
				Prompt:   prompter,
				Reporter: logger,
			}

			dest, summary, err := triager.Run(ctx, cfg.SourceDir, cfg.TargetDir, cfg.Subdir)
			if err != nil {
				return err
			}

			presentation.Printer{Writer: cmd.OutOrStdout()}.PrintSummary(dest, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.SourceDir, "from", "f", "", "source directory to triage (required)")
	cmd.Flags().StringVarP(&cfg.TargetDir, "to", "t", "", "destination directory, created if missing (required)")
	cmd.Flags().StringVarP(&cfg.Subdir, "subdir", "s", "", `date pattern for dated subdirectories, e.g. "%Y/%m - %B"`)
	cmd.Flags().BoolVar(&cfg.Plain, "plain", false, "numbered line prompts instead of the interactive menu")
	cmd.Flags().BoolVar(&cfg.NoPreview, "no-preview", false, "disable terminal image previews")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	return cmd
}

func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	logger := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	return logger.WithContext(ctx)
}
