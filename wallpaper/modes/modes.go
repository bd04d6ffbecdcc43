package modes

import (
	"fmt"
	"strings"
)

// FillStyle describes how the desktop scales an image that does not match the screen.
type FillStyle int

const (
	// Unset leaves whatever the desktop is currently configured with.
	Unset FillStyle = iota
	Center
	Fit
	Stretch
	Tile
	Zoom
	Span
)

var names = map[FillStyle]string{
	Unset:   "",
	Center:  "center",
	Fit:     "fit",
	Stretch: "stretch",
	Tile:    "tile",
	Zoom:    "zoom",
	Span:    "span",
}

func (f FillStyle) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return fmt.Sprintf("FillStyle(%d)", int(f))
}

// Parse maps a configured name to a FillStyle. The empty string is Unset.
func Parse(s string) (FillStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for style, name := range names {
		if name == s {
			return style, nil
		}
	}
	return Unset, fmt.Errorf("unknown fill mode %q", s)
}
