package wallpaper

import (
	"context"
	"strconv"

	"apod-wallpaper/logger"
	"apod-wallpaper/wallpaper/modes"
	"apod-wallpaper/wallpaper/shell"
)

type darwinSetter struct {
	runner shell.Runner
}

// DarwinCommand uses AppleScript to tell System Events to set every desktop's picture to file.
func DarwinCommand(file string) (string, []string) {
	return "osascript", []string{"-e", `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(file)}
}

func (s *darwinSetter) Set(ctx context.Context, file string) error {
	name, args := DarwinCommand(file)
	return s.runner.Run(ctx, name, args...)
}

// SetMode is not supported through System Events; macOS keeps its own scaling.
func (s *darwinSetter) SetMode(_ context.Context, mode modes.FillStyle) error {
	if mode != modes.Unset {
		logger.Debug("Ignoring fill mode %s on macOS\n", mode)
	}
	return nil
}
