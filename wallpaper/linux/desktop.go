package linux

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"apod-wallpaper/wallpaper/modes"
	"apod-wallpaper/wallpaper/shell"
)

// DesktopEnv names the variable the session sets to identify its desktop.
const DesktopEnv = "XDG_CURRENT_DESKTOP"

// ErrUnsupportedDesktop is returned for desktops that are neither GNOME- nor KDE-like.
var ErrUnsupportedDesktop = errors.New("unsupported desktop environment")

type Desktop int

const (
	Unknown Desktop = iota
	GnomeLike
	KDELike
)

func (d Desktop) String() string {
	switch d {
	case GnomeLike:
		return "GNOME"
	case KDELike:
		return "KDE"
	default:
		return "unknown"
	}
}

// Detect classifies an XDG_CURRENT_DESKTOP value such as "ubuntu:GNOME" or "KDE".
// The GNOME marker is checked first.
func Detect(value string) Desktop {
	switch {
	case strings.Contains(value, "GNOME"):
		return GnomeLike
	case strings.Contains(value, "KDE"):
		return KDELike
	default:
		return Unknown
	}
}

// Setter applies wallpapers on Linux desktops by driving their own tools.
type Setter struct {
	desktop Desktop
	value   string
	runner  shell.Runner
	plasma  PlasmaScripter
}

// NewSetter binds a setter to the desktop named by value. plasma is used for KDE
// when qdbus is not installed and may be nil.
func NewSetter(value string, runner shell.Runner, plasma PlasmaScripter) *Setter {
	return &Setter{
		desktop: Detect(value),
		value:   value,
		runner:  runner,
		plasma:  plasma,
	}
}

func (s *Setter) Desktop() Desktop { return s.desktop }

func (s *Setter) Set(ctx context.Context, file string) error {
	switch s.desktop {
	case GnomeLike:
		name, args := GnomeCommand(file)
		if err := s.runner.Run(ctx, name, args...); err != nil {
			return fmt.Errorf("failed to set GNOME wallpaper: %w", err)
		}
		return nil
	case KDELike:
		if err := s.evaluate(ctx, KDEScript(file)); err != nil {
			return fmt.Errorf("failed to set KDE wallpaper: %w", err)
		}
		return nil
	default:
		return s.unsupported()
	}
}

func (s *Setter) SetMode(ctx context.Context, mode modes.FillStyle) error {
	if mode == modes.Unset {
		return nil
	}
	switch s.desktop {
	case GnomeLike:
		name, args, err := GnomeFillCommand(mode)
		if err != nil {
			return err
		}
		if err := s.runner.Run(ctx, name, args...); err != nil {
			return fmt.Errorf("failed to set GNOME fill mode: %w", err)
		}
		return nil
	case KDELike:
		script, err := KDEFillScript(mode)
		if err != nil {
			return err
		}
		if err := s.evaluate(ctx, script); err != nil {
			return fmt.Errorf("failed to set KDE fill mode: %w", err)
		}
		return nil
	default:
		return s.unsupported()
	}
}

func (s *Setter) unsupported() error {
	if s.value == "" {
		return fmt.Errorf("%w: %s is not set", ErrUnsupportedDesktop, DesktopEnv)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedDesktop, s.value)
}

// fileURI turns an absolute path into a file:// URI, escaping spaces and the like.
func fileURI(path string) string {
	return (&url.URL{Scheme: "file", Path: path}).String()
}
