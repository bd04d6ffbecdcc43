//go:build windows

package wallpaper

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"apod-wallpaper/wallpaper/modes"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateIniFile    = 0x01
	spifSendWinIniChange = 0x02
	desktopKey           = `Control Panel\Desktop`
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// nativeSetter calls SystemParametersInfoW for the current user and persists the change.
type nativeSetter struct {
	last string
}

func newNativeSetter() (Setter, error) {
	if err := procSystemParametersInfoW.Find(); err != nil {
		return nil, fmt.Errorf("load SystemParametersInfoW: %w", err)
	}
	return &nativeSetter{}, nil
}

func (s *nativeSetter) Set(_ context.Context, file string) error {
	if err := setDeskWallpaper(file); err != nil {
		return err
	}
	s.last = file
	return nil
}

// SetMode writes the style to the registry. Windows only reads it when the
// wallpaper is applied, so the last file is applied again.
func (s *nativeSetter) SetMode(_ context.Context, mode modes.FillStyle) error {
	if mode == modes.Unset {
		return nil
	}
	style, tile, ok := windowsStyle(mode)
	if !ok {
		return fmt.Errorf("fill mode %s has no Windows equivalent", mode)
	}

	key, _, err := registry.CreateKey(registry.CURRENT_USER, desktopKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s: %w", desktopKey, err)
	}
	defer key.Close()

	if err := key.SetStringValue("WallpaperStyle", style); err != nil {
		return fmt.Errorf("write WallpaperStyle: %w", err)
	}
	if err := key.SetStringValue("TileWallpaper", tile); err != nil {
		return fmt.Errorf("write TileWallpaper: %w", err)
	}
	if s.last == "" {
		return nil
	}
	return setDeskWallpaper(s.last)
}

func setDeskWallpaper(file string) error {
	path, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}
	ok, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(path)),
		spifUpdateIniFile|spifSendWinIniChange,
	)
	if ok == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}
	return nil
}
