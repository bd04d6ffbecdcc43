package linux

import (
	"fmt"

	"apod-wallpaper/wallpaper/modes"
)

const gnomeSchema = "org.gnome.desktop.background"

// GnomeCommand builds the gsettings invocation that points the background at file.
func GnomeCommand(file string) (string, []string) {
	return "gsettings", []string{"set", gnomeSchema, "picture-uri", fileURI(file)}
}

// GnomeFillCommand builds the gsettings invocation for the picture-options key.
func GnomeFillCommand(mode modes.FillStyle) (string, []string, error) {
	option := getGNOMEString(mode)
	if option == "" {
		return "", nil, fmt.Errorf("fill mode %s has no GNOME equivalent", mode)
	}
	return "gsettings", []string{"set", gnomeSchema, "picture-options", option}, nil
}

func getGNOMEString(mode modes.FillStyle) string {
	switch mode {
	case modes.Center:
		return "centered"
	case modes.Fit:
		return "scaled"
	case modes.Stretch:
		return "stretched"
	case modes.Tile:
		return "wallpaper"
	case modes.Zoom:
		return "zoom"
	case modes.Span:
		return "spanned"
	default:
		return ""
	}
}
