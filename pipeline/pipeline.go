package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"apod-wallpaper/apod"
	"apod-wallpaper/logger"
	"apod-wallpaper/wallpaper"
	"apod-wallpaper/wallpaper/modes"
)

type Fetcher interface {
	Fetch(ctx context.Context) (*apod.Metadata, error)
}

type Downloader interface {
	Download(ctx context.Context, url, dest string) (string, error)
}

// Pipeline runs fetch, download and set wallpaper once, strictly in that order.
type Pipeline struct {
	Fetcher    Fetcher
	Downloader Downloader
	// Setter is nil when the platform has no wallpaper implementation.
	Setter   wallpaper.Setter
	Dest     string
	FillMode modes.FillStyle
}

// Run stops at the first failing stage and returns its error. A fill mode that
// cannot be applied is only a warning.
func (p *Pipeline) Run(ctx context.Context) error {
	meta, err := p.Fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch image data: %w", err)
	}
	logger.Info("Fetched image data: %q (%s) %s\n", meta.Title, meta.Date, meta.HDURL)

	path, err := p.Downloader.Download(ctx, meta.HDURL, p.Dest)
	if err != nil {
		return fmt.Errorf("failed to download image: %w", err)
	}
	logger.Info("Image downloaded to %s\n", path)

	if err := p.setWallpaper(ctx, path); err != nil {
		return fmt.Errorf("failed to set wallpaper on %s: %w", runtime.GOOS, err)
	}
	logger.Info("Wallpaper set to %s\n", path)
	return nil
}

func (p *Pipeline) setWallpaper(ctx context.Context, path string) error {
	if p.Setter == nil {
		return fmt.Errorf("%w: %s", wallpaper.ErrUnsupportedOS, runtime.GOOS)
	}
	if err := p.Setter.Set(ctx, path); err != nil {
		return err
	}
	if p.FillMode == modes.Unset {
		return nil
	}
	if err := p.Setter.SetMode(ctx, p.FillMode); err != nil {
		logger.Warn("Failed to set fill mode %s: %v\n", p.FillMode, err)
	}
	return nil
}
