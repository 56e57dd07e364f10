// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	colorOutput = termenv.NewOutput(os.Stdout)

	// detected profile of the terminal
	detectedProfile = colorOutput.Profile
)

// SetColor sets whether the color functions such as [SuccessColor] color
// their text. Even when on, color is only used if the terminal supports it.
func SetColor(on bool) {
	if on {
		colorOutput.Profile = detectedProfile
	} else {
		colorOutput.Profile = termenv.Ascii
	}
}

// SetColorProfile sets the color profile used by the color functions,
// overriding the one detected from the terminal.
func SetColorProfile(p termenv.Profile) {
	colorOutput.Profile = p
}

// SuccessColor returns the given string colored as a success.
func SuccessColor(s string) string {
	return colorize(s, termenv.ANSIGreen)
}

// ErrorColor returns the given string colored as an error.
func ErrorColor(s string) string {
	return colorize(s, termenv.ANSIRed)
}

// CmdColor returns the given string colored as a command or name.
func CmdColor(s string) string {
	return colorize(s, termenv.ANSICyan)
}

func colorize(s string, c termenv.ANSIColor) string {
	return colorOutput.String(s).Foreground(colorOutput.Convert(c)).String()
}
