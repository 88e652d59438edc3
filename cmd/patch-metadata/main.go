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

// Patch-metadata sets the PostScript name and the vertical metrics of the
// Seagull Flags icon font.  The font file is modified in place.
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
	cfg := fontpatch.SeagullFlagsMetadata
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "patch-metadata \u2014 set the font name and vertical metrics\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("patch-metadata"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  patch-metadata <font.ttf>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   TrueType font file, modified in place\n\n")
		fmt.Fprintf(os.Stderr, "The font must use %d units per em.  The PostScript name\n",
			cfg.UnitsPerEm)
		fmt.Fprintf(os.Stderr, "is set to %q.\n", cfg.PostScriptName)
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

func run(fname string, cfg *fontpatch.MetadataConfig) error {
	err := cli.SetupLogging()
	if err != nil {
		return err
	}

	err = fontpatch.Edit(fname, func(f *fontpatch.Font) error {
		return fontpatch.PatchMetadata(f, cfg)
	})
	if err != nil {
		return err
	}

	logrus.Infof("%s: metadata updated", fname)
	return nil
}
