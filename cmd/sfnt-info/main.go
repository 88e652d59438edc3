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

// Sfnt-info prints the table directory and the metrics of sfnt font files.
// The output shows all values changed by widen-glyphs and patch-metadata.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/fontpatch"
	"seehuhn.de/go/fontpatch/internal/buildinfo"
	"seehuhn.de/go/fontpatch/internal/cli"
	"seehuhn.de/go/fontpatch/sfnt/name"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sfnt-info \u2014 show metrics and names of sfnt fonts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("sfnt-info"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  sfnt-info <font.ttf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   one or more TrueType or OpenType fonts\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	err := cli.SetupLogging()
	if err != nil {
		return err
	}

	for i, fname := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		err := show(fname)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

func show(fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()

	fmt.Println(fname)

	info, err := header.Read(fd)
	if err != nil {
		return err
	}
	fmt.Printf("scaler type %08X\n\n", info.ScalerType)
	tableNames := make([]string, 0, len(info.Toc))
	for name := range info.Toc {
		tableNames = append(tableNames, name)
	}
	sort.Slice(tableNames, func(i, j int) bool {
		return info.Toc[tableNames[i]].Offset < info.Toc[tableNames[j]].Offset
	})
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "table\toffset\tlength\t")
	for _, name := range tableNames {
		rec := info.Toc[name]
		fmt.Fprintf(tw, "%q\t%d\t%d\t\n", name, rec.Offset, rec.Length)
	}
	err = tw.Flush()
	if err != nil {
		return err
	}
	fmt.Println()

	sf, err := sfnt.Read(fd)
	if err != nil {
		logrus.Warnf("%s: %v", fname, err)
	} else {
		outlines := "glyf"
		if sf.IsCFF() {
			outlines = "CFF"
		}
		fmt.Printf("family %q, PostScript name %q\n", sf.FamilyName, sf.PostScriptName())
		fmt.Printf("%d glyphs, %s outlines\n\n", sf.NumGlyphs(), outlines)
	}

	f, err := fontpatch.Read(fd)
	if err != nil {
		return err
	}
	return showTables(f)
}

func showTables(f *fontpatch.Font) error {
	headInfo, err := f.Head()
	if err != nil {
		return err
	}
	bbox := headInfo.FontBBox()
	fmt.Printf("head: unitsPerEm %d, bbox [%d %d %d %d], modified %s\n",
		headInfo.UnitsPerEm, bbox.LLx, bbox.LLy, bbox.URx, bbox.URy,
		headInfo.ModifiedTime().Format("2006-01-02"))

	hheaInfo, err := f.Hhea()
	if err != nil {
		return err
	}
	fmt.Printf("hhea: ascent %d, descent %d, lineGap %d, xMaxExtent %d, advanceWidthMax %d\n",
		hheaInfo.Ascent, hheaInfo.Descent, hheaInfo.LineGap,
		hheaInfo.XMaxExtent, hheaInfo.AdvanceWidthMax)

	mm, err := f.Metrics(hheaInfo)
	if err != nil {
		return err
	}
	widths := make(map[uint16]int)
	for _, m := range mm {
		widths[m.Width]++
	}
	cfg := fontpatch.SeagullFlagsWidths
	fmt.Printf("hmtx: %d glyphs of width %d, %d glyphs of width %d\n",
		widths[cfg.SourceWidth], cfg.SourceWidth,
		widths[cfg.TargetWidth], cfg.TargetWidth)

	os2Info, err := f.OS2()
	if err == nil {
		fmt.Printf("OS/2: version %d, fsSelection %s, xAvgCharWidth %d\n",
			os2Info.Version, os2Info.Selection, os2Info.AvgCharWidth)
		if m := os2Info.Metrics; m != nil {
			fmt.Printf("OS/2: typo %d/%d/%d, win %d/%d\n",
				m.TypoAscender, m.TypoDescender, m.TypoLineGap,
				m.WinAscent, m.WinDescent)
		}
		if h := os2Info.Heights; h != nil {
			fmt.Printf("OS/2: xHeight %d, capHeight %d\n", h.XHeight, h.CapHeight)
		}
	} else if f.Has("OS/2") {
		return err
	}

	nameInfo, err := f.Name()
	if err != nil {
		return err
	}
	for _, rec := range nameInfo.Records {
		if rec.NameID != name.PostScriptName {
			continue
		}
		val, err := rec.String()
		if err != nil {
			val = fmt.Sprintf("<%v>", err)
		}
		fmt.Printf("name: platform %d, encoding %d, language %s: %q\n",
			rec.PlatformID, rec.EncodingID, nameInfo.Language(rec), val)
	}
	return nil
}
