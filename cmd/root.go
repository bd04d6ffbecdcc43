package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"apod-wallpaper/apod"
	"apod-wallpaper/config"
	"apod-wallpaper/download"
	"apod-wallpaper/logger"
	"apod-wallpaper/pipeline"
	"apod-wallpaper/wallpaper"
)

// setterFactory is swapped in tests so no real desktop is touched.
type setterFactory func() (wallpaper.Setter, error)

func newRootCmd(newSetter setterFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "apod-wallpaper",
		Short: "Set today's NASA Astronomy Picture of the Day as the desktop wallpaper",
		Long: `apod-wallpaper fetches the Astronomy Picture of the Day from api.nasa.gov,
saves the high-definition image to your pictures directory and makes it the
desktop background.

The API key is read from APOD_KEY, which may also be placed in a .env file in
the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.Debug)
			run(cmd.Context(), cfg, newSetter)
			return nil
		},
	}
}

// run executes the pipeline. Its failures are reported but never change the exit status.
func run(ctx context.Context, cfg *config.Config, newSetter setterFactory) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	setter, err := newSetter()
	if err != nil {
		logger.Debug("No wallpaper setter: %v\n", err)
		setter = nil
	}

	p := &pipeline.Pipeline{
		Fetcher:    apod.NewClient(httpClient, cfg.Endpoint, cfg.APIKey),
		Downloader: download.NewDownloader(httpClient),
		Setter:     setter,
		Dest:       cfg.Destination(),
		FillMode:   cfg.FillMode,
	}
	logger.Debug("Saving to %s\n", p.Dest)

	if err := p.Run(ctx); err != nil {
		logger.Error("%v\n", err)
	}
}

// Execute runs the root command. Only configuration errors exit non-zero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(wallpaper.New).ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("%v\n", err)
		os.Exit(1)
	}
}
