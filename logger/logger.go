package logger

import (
	"github.com/fatih/color"
)

// Info prints progress lines in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints recoverable problems in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints failures in red to the error stream.
var Error = func(format string, a ...any) {
	errorColor.Fprintf(color.Error, format, a...)
}

var errorColor = color.New(color.FgRed)

// Debug prints cyan diagnostics once enabled by Init, otherwise it is a no-op.
var Debug = func(format string, a ...any) {}

// Init switches debug output on or off.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
