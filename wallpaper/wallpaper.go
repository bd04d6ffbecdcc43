package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"apod-wallpaper/wallpaper/linux"
	"apod-wallpaper/wallpaper/modes"
	"apod-wallpaper/wallpaper/shell"
)

// Setter changes the desktop background of the current user session.
type Setter interface {
	// Set points the desktop background at file, an absolute path.
	Set(ctx context.Context, file string) error
	// SetMode changes how the background is scaled. modes.Unset is a no-op.
	SetMode(ctx context.Context, mode modes.FillStyle) error
}

var (
	ErrUnsupportedOS      = errors.New("unsupported operating system")
	ErrUnsupportedDesktop = linux.ErrUnsupportedDesktop
)

// New returns the Setter for the running operating system.
func New() (Setter, error) {
	return ForOS(runtime.GOOS, os.Getenv, shell.Exec{})
}

// ForOS returns the Setter for goos. getenv and runner are used by the
// command-driven implementations; the Windows one calls the OS directly.
func ForOS(goos string, getenv func(string) string, runner shell.Runner) (Setter, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return linux.NewSetter(getenv(linux.DesktopEnv), runner, linux.SessionBus{}), nil
	case "darwin":
		return &darwinSetter{runner: runner}, nil
	case "windows":
		return newNativeSetter()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}
