// seehuhn.de/go/fontpatch - patch metrics and names in sfnt font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli contains helpers shared by the command line tools.
package cli

import (
	"fmt"
	"io"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// LogLevelEnv is the environment variable which selects the log level.
const LogLevelEnv = "FONTPATCH_LOG_LEVEL"

// SetupLogging configures the standard logrus logger to write to stderr.
// Colours are used only if stderr is a terminal.
func SetupLogging() error {
	return setupLogging(logrus.StandardLogger(), os.Stderr, os.Getenv(LogLevelEnv))
}

func setupLogging(log *logrus.Logger, w io.Writer, levelName string) error {
	colors := false
	if fd, ok := w.(interface{ Fd() uintptr }); ok {
		colors = term.IsTerminal(int(fd.Fd()))
	}

	log.SetOutput(w)
	log.SetFormatter(&nested.Formatter{
		HideKeys:        false,
		NoColors:        !colors,
		NoFieldsColors:  !colors,
		TimestampFormat: "15:04:05",
	})

	level := logrus.InfoLevel
	if levelName != "" {
		var err error
		level, err = logrus.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("%s: %w", LogLevelEnv, err)
		}
	}
	log.SetLevel(level)
	return nil
}
