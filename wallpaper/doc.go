// Package wallpaper sets the desktop background for the current user.
//
// The implementation is picked at run time from the operating system:
// Linux desktops are driven through their own command-line tools (see the
// linux subpackage), macOS through AppleScript, and Windows through
// SystemParametersInfoW. Command-driven setters take a shell.Runner so the
// exact invocations can be checked without touching a live session.
package wallpaper
