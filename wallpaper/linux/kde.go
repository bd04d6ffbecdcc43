package linux

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"

	"apod-wallpaper/wallpaper/modes"
)

const (
	plasmaService = "org.kde.plasmashell"
	plasmaPath    = "/PlasmaShell"
	plasmaMethod  = "org.kde.PlasmaShell.evaluateScript"
)

// PlasmaScripter evaluates a Plasma desktop script without going through qdbus.
type PlasmaScripter interface {
	EvaluateScript(ctx context.Context, script string) error
}

// SessionBus talks to plasmashell over the user's D-Bus session bus.
type SessionBus struct{}

func (SessionBus) EvaluateScript(ctx context.Context, script string) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object(plasmaService, dbus.ObjectPath(plasmaPath)).CallWithContext(ctx, plasmaMethod, 0, script)
	return call.Err
}

// KDECommand builds the qdbus invocation that evaluates script in plasmashell.
func KDECommand(script string) (string, []string) {
	return "qdbus", []string{plasmaService, plasmaPath, plasmaMethod, script}
}

// KDEScript rewrites the image of the first desktop's wallpaper plugin.
func KDEScript(file string) string {
	return plasmaScript(fmt.Sprintf(`d.writeConfig("Image", %s);`, strconv.Quote(fileURI(file))))
}

// KDEFillScript sets the FillMode of the first desktop's image plugin.
func KDEFillScript(mode modes.FillStyle) (string, error) {
	fill, ok := kdeFillMode(mode)
	if !ok {
		return "", fmt.Errorf("fill mode %s has no KDE equivalent", mode)
	}
	return plasmaScript(fmt.Sprintf(`d.writeConfig("FillMode", %d);`, fill)), nil
}

func plasmaScript(body string) string {
	lines := []string{
		`var allDesktops = desktops();`,
		`d = allDesktops[0];`,
		`d.wallpaperPlugin = "org.kde.image";`,
		`d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");`,
		body,
	}
	return strings.Join(lines, "\n")
}

// kdeFillMode maps to the Image.FillMode values of the org.kde.image plugin.
func kdeFillMode(mode modes.FillStyle) (int, bool) {
	switch mode {
	case modes.Stretch:
		return 0, true
	case modes.Fit:
		return 1, true
	case modes.Zoom:
		return 2, true
	case modes.Tile:
		return 3, true
	case modes.Center:
		return 6, true
	default:
		return 0, false
	}
}

// evaluate prefers the qdbus tool and falls back to the session bus when it is not installed.
func (s *Setter) evaluate(ctx context.Context, script string) error {
	name, args := KDECommand(script)
	err := s.runner.Run(ctx, name, args...)
	if err == nil || !errors.Is(err, exec.ErrNotFound) || s.plasma == nil {
		return err
	}
	return s.plasma.EvaluateScript(ctx, script)
}
