//go:build !windows

package wallpaper

import "fmt"

func newNativeSetter() (Setter, error) {
	return nil, fmt.Errorf("%w: the native wallpaper API is only available on windows", ErrUnsupportedOS)
}
