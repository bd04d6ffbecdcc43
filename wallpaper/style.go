package wallpaper

import "apod-wallpaper/wallpaper/modes"

// windowsStyle maps a fill style to the WallpaperStyle and TileWallpaper values
// under HKCU\Control Panel\Desktop.
func windowsStyle(mode modes.FillStyle) (style, tile string, ok bool) {
	switch mode {
	case modes.Center:
		return "0", "0", true
	case modes.Tile:
		return "0", "1", true
	case modes.Stretch:
		return "2", "0", true
	case modes.Fit:
		return "6", "0", true
	case modes.Zoom:
		return "10", "0", true
	case modes.Span:
		return "22", "0", true
	default:
		return "", "", false
	}
}
