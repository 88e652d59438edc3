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

// Widen-glyphs gives the full-width glyphs of the Seagull Flags icon font
// their final advance width.  The font file is modified in place.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/fontpatch"
	"seehuhn.de/go/fontpatch/internal/buildinfo"
	"seehuhn.de/go/fontpatch/internal/cli"
)

func main() {
	cfg := fontpatch.SeagullFlagsWidths
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "widen-glyphs \u2014 change the advance width of full-width glyphs\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("widen-glyphs"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  widen-glyphs <font.ttf>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   TrueType font file, modified in place\n\n")
		fmt.Fprintf(os.Stderr, "Glyphs %d units wide are widened to %d units;\n",
			cfg.SourceWidth, cfg.TargetWidth)
		fmt.Fprintf(os.Stderr, "their outlines are moved to stay centred.\n")
		fmt.Fprintf(os.Stderr, "Set %s=debug to list the changed glyphs.\n", cli.LogLevelEnv)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string, cfg *fontpatch.WidthConfig) error {
	err := cli.SetupLogging()
	if err != nil {
		return err
	}

	var res *fontpatch.WidenResult
	err = fontpatch.Edit(fname, func(f *fontpatch.Font) error {
		var err error
		res, err = fontpatch.WidenGlyphs(f, cfg)
		return err
	})
	if err != nil {
		return err
	}

	logrus.Infof("%s: %d glyphs widened, %d contours reversed",
		fname, len(res.Widened), res.Reversed)
	return nil
}
